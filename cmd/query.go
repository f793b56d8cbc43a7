package main

import (
	"context"
	"fmt"
	"os"
	"productreader/internal/config"
	"productreader/internal/decoder"
	"productreader/internal/display"
	"productreader/internal/reader"
	"productreader/pkg/domain"
	"productreader/pkg/logger"
	"productreader/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func lookup(ctx context.Context, cfg *config.Config, addr domain.ProductAddress) (domain.Product, error) {
	if addr.IsZero() {
		return domain.Product{}, serrors.With(serrors.ErrUnboundTag, "zero address is never registered")
	}

	values, err := getRegistryClient(ctx, cfg).GetProduct(ctx, addr)
	if err != nil {
		return domain.Product{}, err
	}

	record, err := decoder.Decode(values)
	if err != nil {
		return domain.Product{}, err
	}
	if err := record.Validate(); err != nil {
		logger.Warn(ctx, "product has unknown categories", zap.Error(err))
	}

	return domain.Product{
		Address: addr,
		Record:  record,
		Image:   imageOf(cfg).URL(record.ContentID, record.Name),
	}, nil
}

func queryCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <address>",
		Short: "Looks up one product address in the registry, skipping the tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			term := display.NewTerminal(os.Stdout)

			addr, err := domain.ParseProductAddress(args[0])
			if err != nil {
				return fmt.Errorf("invalid address: %w", err)
			}

			product, err := lookup(ctx, cfg, addr)
			if err != nil {
				_ = term.ShowStatus(ctx, reader.StatusMessage(err))

				return err
			}

			return term.ShowProduct(ctx, product)
		},
	}

	return cmd
}
