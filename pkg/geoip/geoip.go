package geoip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync/atomic"

	"github.com/oschwald/geoip2-golang"

	"github.com/dmitrymomot/ifconfig/pkg/logger"
)

// Unknown is returned whenever a country cannot be resolved.
const Unknown = "Unknown"

// fallbackLanguage is tried when the configured language has no name.
const fallbackLanguage = "en"

// CountryReader is the subset of *geoip2.Reader used by Lookup.
type CountryReader interface {
	Country(ip net.IP) (*geoip2.Country, error)
}

// Lookup resolves addresses to country names.
type Lookup struct {
	reader   CountryReader
	close    func() error
	language string
	log      *slog.Logger
	closed   atomic.Bool
}

// Option configures a Lookup.
type Option func(*Lookup)

// WithLanguage selects the language of returned names. Empty values are ignored.
func WithLanguage(lang string) Option {
	return func(l *Lookup) {
		if lang != "" {
			l.language = lang
		}
	}
}

// WithLogger sets the logger used to report lookup failures.
func WithLogger(log *slog.Logger) Option {
	return func(l *Lookup) {
		if log != nil {
			l.log = log
		}
	}
}

// New wraps an already opened reader.
func New(reader CountryReader, opts ...Option) *Lookup {
	l := &Lookup{
		reader:   reader,
		close:    func() error { return nil },
		language: fallbackLanguage,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open memory-maps the database at path.
func Open(path string, opts ...Option) (*Lookup, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenDatabase, path, err)
	}
	return fromReader(reader, opts...)
}

// FromBytes opens a database held in memory.
func FromBytes(data []byte, opts ...Option) (*Lookup, error) {
	reader, err := geoip2.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDatabase, err)
	}
	return fromReader(reader, opts...)
}

func fromReader(reader *geoip2.Reader, opts ...Option) (*Lookup, error) {
	dbType := reader.Metadata().DatabaseType
	if !strings.Contains(dbType, "Country") && !strings.Contains(dbType, "City") {
		_ = reader.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDatabase, dbType)
	}

	l := New(reader, opts...)
	l.close = reader.Close
	return l, nil
}

// Close releases the database. Later lookups return Unknown and Ping
// reports ErrClosed. Repeated calls are no-ops.
func (l *Lookup) Close() error {
	if l.closed.Swap(true) {
		return nil
	}
	return l.close()
}

// Ping reports whether the database is open. It backs the readiness check.
func (l *Lookup) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l.closed.Load() || l.reader == nil {
		return ErrClosed
	}
	return nil
}

// Country returns the country name for addr, or Unknown. It never fails.
func (l *Lookup) Country(ctx context.Context, addr string) string {
	if l.closed.Load() {
		return Unknown
	}
	name, err := l.lookup(addr)
	if err == nil {
		return name
	}

	level := slog.LevelWarn
	if errors.Is(err, ErrNoRecord) {
		// Private and reserved ranges never have records
		level = slog.LevelDebug
	}
	l.log.LogAttrs(ctx, level, "country lookup failed",
		logger.IP(addr),
		logger.Error(err),
		logger.Component("geoip"),
	)
	return Unknown
}

func (l *Lookup) lookup(addr string) (name string, err error) {
	defer func() {
		// Corrupt databases can panic inside the decoder
		if r := recover(); r != nil {
			name, err = "", fmt.Errorf("%w: %v", ErrLookupFailed, r)
		}
	}()

	ip := net.ParseIP(addr)
	if ip == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}

	record, err := l.reader.Country(ip)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	if record == nil {
		return "", ErrNoRecord
	}

	if name := l.pickName(record.Country.Names, record.Country.IsoCode); name != "" {
		return name, nil
	}
	// Anycast and some EU ranges only carry the registered country
	if name := l.pickName(record.RegisteredCountry.Names, record.RegisteredCountry.IsoCode); name != "" {
		return name, nil
	}
	return "", ErrNoRecord
}

func (l *Lookup) pickName(names map[string]string, isoCode string) string {
	if name := names[l.language]; name != "" {
		return name
	}
	if name := names[fallbackLanguage]; name != "" {
		return name
	}
	return isoCode
}
