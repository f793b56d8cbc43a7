package main

import (
	"context"
	"os"
	"os/signal"
	"productreader/internal/config"
	"productreader/internal/display"
	"productreader/internal/reader"
	"productreader/pkg/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func readCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <image>...",
		Short: "Scans each MIFARE memory image as a tag and prints the product",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pipeline, stopTelemetry := setupTelemetry(ctx)
			defer stopTelemetry(context.Background())

			seq := &reader.Sequencer{}
			r := getReader(ctx, cfg, seq, pipeline)
			presenter := reader.NewPresenter(display.NewTerminal(os.Stdout), seq, pipeline)

			results := make(chan reader.Result)
			done := make(chan struct{})
			go func() {
				defer close(done)
				_ = presenter.Serve(ctx, results)
			}()

			for _, path := range args {
				tag, err := openTag(path)
				if err != nil {
					logger.Error(ctx, "could not open tag image", zap.String("path", path), zap.Error(err))

					continue
				}
				r.Handle(ctx, tag, results)
			}
			close(results)
			<-done
		},
	}

	return cmd
}
