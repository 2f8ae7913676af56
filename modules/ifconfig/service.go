package ifconfig

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ifconfig/handler"
	"github.com/dmitrymomot/ifconfig/pkg/binder"
	"github.com/dmitrymomot/ifconfig/pkg/headers"
	"github.com/dmitrymomot/ifconfig/pkg/logger"
	"github.com/dmitrymomot/ifconfig/templates"
)

// ErrRender wraps failures to build a page component.
var ErrRender = errors.New("failed to render page")

// CountryLookup maps an address to a country label. Implementations must
// never fail; unknown addresses yield a sentinel label.
type CountryLookup interface {
	Country(ctx context.Context, addr string) string
}

// Pages builds named page components. *templates.Set implements it.
type Pages interface {
	Component(name string, data any) (templ.Component, error)
}

// Service answers "who am I" requests.
type Service struct {
	geo          CountryLookup
	pages        Pages
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithErrorHandler replaces the handler used for render and address failures.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService creates a Service. Both dependencies are shared by all requests
// and must be safe for concurrent use.
func NewService(geo CountryLookup, pages Pages, opts ...Option) *Service {
	s := &Service{
		geo:   geo,
		pages: pages,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log)
	}
	return s
}

// Register mounts the lookup routes on r. Unmatched paths go through the
// same miss logic as unknown header names.
func (s *Service) Register(r chi.Router) {
	binders := handler.WithBinders[handler.Context, lookupRequest](
		binder.Path(chi.URLParam),
		binder.Query(),
		binder.Header(),
	)
	errs := handler.WithErrorHandler[handler.Context, lookupRequest](s.errorHandler)

	r.Get("/", handler.Wrap(s.lookup, binders, errs))
	r.Get("/{param}", handler.Wrap(s.lookup, binders, errs))
	r.NotFound(handler.Wrap(s.unmatched, binders, errs))
}

// Handle returns a standalone router serving the lookup routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

func (s *Service) lookup(ctx handler.Context, req lookupRequest) handler.Response {
	rc, err := newRequestContext(ctx.Request(), req)
	if err != nil {
		return handler.Error(err)
	}
	return s.Respond(ctx, rc)
}

func (s *Service) unmatched(ctx handler.Context, req lookupRequest) handler.Response {
	rc, err := newRequestContext(ctx.Request(), req)
	if err != nil {
		return handler.Error(err)
	}
	rc.Param, rc.Unmatched = "", true
	return s.Respond(ctx, rc)
}

// Respond executes the route chosen by Decide. The geo database is consulted
// only by routes that show the country.
func (s *Service) Respond(ctx context.Context, rc RequestContext) handler.Response {
	route := Decide(rc)
	s.log.DebugContext(ctx, "route decided",
		logger.Route(route.Kind.String()),
		slog.String("param", rc.Param),
		slog.Bool("cli", rc.IsCLI),
	)

	switch route.Kind {
	case KindAddress:
		return handler.Text(rc.RemoteAddress + "\n")

	case KindIndex:
		country := s.geo.Country(ctx, rc.RemoteAddress)
		return s.page(templates.Index, templates.IndexData{
			Cmd:            rc.Cmd,
			CmdWithOptions: LookupCmd(rc.Cmd),
			IPAddress:      rc.RemoteAddress,
			Headers:        headers.Project(rc.Headers, rc.RemoteAddress, country),
			Country:        country,
			Host:           rc.Host,
			UserAgent:      describe(rc),
		})

	case KindCountry:
		return handler.Text(s.geo.Country(ctx, rc.RemoteAddress))

	case KindHeadersJSON:
		country := s.geo.Country(ctx, rc.RemoteAddress)
		return handler.PrettyJSON(headers.Project(rc.Headers, rc.RemoteAddress, country))

	case KindHeaderEcho:
		value, _ := headers.Lookup(rc.Headers, route.Header)
		return handler.Text(value)

	case KindSilentMiss:
		return handler.Empty()

	default:
		return s.page(templates.NotFound, nil)
	}
}

func (s *Service) page(name string, data any, opts ...handler.Option) handler.Response {
	c, err := s.pages.Component(name, data)
	if err != nil {
		return handler.Error(errors.Join(ErrRender, err))
	}
	return handler.Templ(c, opts...)
}

// describe returns the client description for the index page, or an empty
// string when nothing was recognised.
func describe(rc RequestContext) string {
	if rc.UserAgent.IsUnknown() {
		return ""
	}
	return rc.UserAgent.Describe()
}
