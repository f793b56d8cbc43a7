package main

import (
	"context"
	"errors"
	"net/http"
	"productreader/internal/api"
	"productreader/internal/api/handler/v1handler"
	"productreader/internal/config"
	"productreader/internal/decoder"
	"productreader/internal/reader"
	"productreader/pkg/logger"
	"productreader/pkg/metrics"
	"productreader/pkg/mifare"
	"productreader/pkg/mifare/dump"
	"productreader/pkg/productquery/ethrpc"
	"productreader/pkg/storage/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// setupTelemetry registers the pipeline collectors and the otel meter
// provider on the default prometheus registry.
func setupTelemetry(ctx context.Context) (*metrics.Pipeline, func(ctx context.Context)) {
	pipeline := metrics.NewPipeline(prometheus.DefaultRegisterer)

	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	return pipeline, func(ctx context.Context) {
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
		}
	}
}

// getRegistryClient creates the JSON-RPC client of the product registry.
func getRegistryClient(ctx context.Context, cfg *config.Config) *ethrpc.Client {
	client, err := ethrpc.New(&http.Client{}, ethrpc.Options{
		Endpoint: cfg.RPC.Endpoint,
		Contract: cfg.ContractAddress(),
		Timeout:  cfg.RPC.Timeout,
		BlockTag: cfg.RPC.BlockTag,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create registry client", zap.Error(err))
	}

	return client
}

func getReader(ctx context.Context, cfg *config.Config, seq *reader.Sequencer, pipeline *metrics.Pipeline) *reader.Reader {
	opts, err := reader.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not configure reader", zap.Error(err))
	}

	return reader.New(getRegistryClient(ctx, cfg), seq, pipeline, opts)
}

// openTag loads a memory image. Images of another size stand for tags of
// another technology and yield a nil tag.
func openTag(path string) (mifare.Tag, error) {
	tag, err := dump.Open(path)
	if errors.Is(err, dump.ErrUnsupportedSize) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return tag, nil
}

func setupServer(ctx context.Context, cfg *config.Config, deps v1handler.Deps) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Deps: deps}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// getPostgres creates the scan history storage using configuration values
// and returns it along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

func imageOf(cfg *config.Config) decoder.Image {
	return decoder.Image{HostSuffix: cfg.Image.HostSuffix, NormalizeCID: cfg.Image.NormalizeCID}
}
