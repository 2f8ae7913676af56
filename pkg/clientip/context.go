package clientip

import (
	"context"
	"log/slog"
	"net"

	"github.com/dmitrymomot/ifconfig/pkg/logger"
)

type (
	peerContextKey     struct{}
	clientIPContextKey struct{}
)

// ConnContext stores the connection's remote address in the base context of
// every request served over c. It matches the http.Server.ConnContext signature.
func ConnContext(ctx context.Context, c net.Conn) context.Context {
	if c == nil || c.RemoteAddr() == nil {
		return ctx
	}
	return context.WithValue(ctx, peerContextKey{}, c.RemoteAddr().String())
}

func peerFromContext(ctx context.Context) string {
	addr, _ := ctx.Value(peerContextKey{}).(string)
	return addr
}

// WithContext stores the resolved client IP in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPContextKey{}, ip)
}

// FromContext returns the client IP stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(clientIPContextKey{}).(string)
	return ip
}

// LoggerExtractor adds the client IP to every record logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return logger.IP(ip), true
		}
		return slog.Attr{}, false
	}
}
