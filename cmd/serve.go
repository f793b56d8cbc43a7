package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"productreader/internal/api/handler/v1handler"
	"productreader/internal/config"
	"productreader/internal/display"
	"productreader/internal/history"
	"productreader/internal/reader"
	"productreader/pkg/logger"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scanLines turns every non-empty line of in into a scan event, sequentially,
// like a reader driver calling back on tag discovery.
func scanLines(ctx context.Context, in io.Reader, r *reader.Reader, results chan<- reader.Result) {
	lines := bufio.NewScanner(in)
	for lines.Scan() {
		path := strings.TrimSpace(lines.Text())
		if path == "" {
			continue
		}

		tag, err := openTag(path)
		if err != nil {
			logger.Error(ctx, "could not open tag image", zap.String("path", path), zap.Error(err))

			continue
		}
		r.Handle(ctx, tag, results)

		if ctx.Err() != nil {
			return
		}
	}
	if err := lines.Err(); err != nil {
		logger.Error(ctx, "could not read scan events", zap.Error(err))
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the status server and scans the memory images whose paths are read from stdin",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pipeline, stopTelemetry := setupTelemetry(ctx)
			defer stopTelemetry(context.Background())

			seq := &reader.Sequencer{}
			r := getReader(ctx, cfg, seq, pipeline)

			latest := display.NewLatest()
			deps := v1handler.Deps{
				Latest: latest,
				Client: getRegistryClient(ctx, cfg),
				Image:  imageOf(cfg),
			}

			var recorders []reader.Recorder
			if cfg.Database.Enabled {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				deps.History = strg
				recorder := history.New(strg)
				recorder.Timeout = cfg.Database.WriteTimeout
				recorders = append(recorders, recorder)
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			sink := display.Fanout{display.NewTerminal(os.Stdout), latest}
			presenter := reader.NewPresenter(sink, seq, pipeline, recorders...)
			results := make(chan reader.Result)
			go func() {
				_ = presenter.Serve(ctx, results)
			}()

			go scanLines(ctx, os.Stdin, r, results)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
