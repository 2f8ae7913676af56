package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/ifconfig/handler"
	"github.com/dmitrymomot/ifconfig/modules/ifconfig"
	"github.com/dmitrymomot/ifconfig/pkg/clientip"
	"github.com/dmitrymomot/ifconfig/pkg/config"
	"github.com/dmitrymomot/ifconfig/pkg/file"
	"github.com/dmitrymomot/ifconfig/pkg/geoip"
	"github.com/dmitrymomot/ifconfig/pkg/httpserver"
	"github.com/dmitrymomot/ifconfig/pkg/logger"
	"github.com/dmitrymomot/ifconfig/pkg/requestid"
	"github.com/dmitrymomot/ifconfig/templates"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("ifconfig stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load[Config]()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	geo, err := openGeo(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := geo.Close(); err != nil {
			log.Warn("failed to close geoip database", logger.Error(err))
		}
	}()

	pages, err := loadPages(cfg.TemplatesDir)
	if err != nil {
		return err
	}

	svc := ifconfig.NewService(geo, pages,
		ifconfig.WithLogger(log),
		ifconfig.WithErrorHandler(handler.NewErrorHandler(log)),
	)

	router := ifconfig.Router(ifconfig.RouterOptions{
		Service: svc,
		Middlewares: []func(http.Handler) http.Handler{
			requestid.Middleware,
			clientip.Middleware,
			logger.Middleware(log),
		},
		Live:   httpserver.HealthCheckHandler(log),
		Ready:  httpserver.HealthCheckHandler(log, geo.Ping),
		Logger: log,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithConnContext(clientip.ConnContext),
	)
	return srv.Run(ctx, router)
}

// openGeo reads the database from S3 when a bucket is configured and from
// the local filesystem otherwise. Startup fails if it cannot be opened.
func openGeo(ctx context.Context, cfg Config, log *slog.Logger) (*geoip.Lookup, error) {
	var (
		src  file.Source
		name = cfg.GeoIP.DatabasePath
		err  error
	)
	if cfg.S3.Enabled() {
		src, err = file.NewS3Storage(ctx, cfg.S3)
	} else {
		src, err = file.NewLocalStorage(filepath.Dir(name))
		name = filepath.Base(name)
	}
	if err != nil {
		return nil, fmt.Errorf("geoip source: %w", err)
	}

	data, err := readDatabase(ctx, src, name)
	if err != nil {
		return nil, err
	}

	geo, err := geoip.FromBytes(data,
		geoip.WithLanguage(cfg.GeoIP.Language),
		geoip.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	log.Info("geoip database loaded",
		slog.String("path", cfg.GeoIP.DatabasePath),
		slog.Int("bytes", len(data)),
		slog.Bool("s3", cfg.S3.Enabled()),
	)
	return geo, nil
}

func readDatabase(ctx context.Context, src file.Source, name string) ([]byte, error) {
	info, err := src.Stat(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("geoip database %s: %w", name, err)
	}
	if info.Size > file.MaxFileSize {
		return nil, fmt.Errorf("geoip database %s: %w", name, file.ErrFileTooLarge)
	}
	data, err := src.ReadFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("geoip database %s: %w", name, err)
	}
	return data, nil
}

func loadPages(dir string) (*templates.Set, error) {
	if dir == "" {
		return templates.New(templates.Default())
	}
	return templates.New(os.DirFS(dir))
}
