package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/rossilindo/estoque/internal/products"
	"github.com/rossilindo/estoque/internal/suppliers"
)

// LowStockScanJob reports products whose quantity is at or below a threshold
// so staff can restock before running out.
type LowStockScanJob struct {
	Products  *products.Service
	Suppliers *suppliers.Service
	Logger    *slog.Logger
	Threshold int
}

// NewLowStockScanJob wires dependencies for the scan handler.
func NewLowStockScanJob(productsSvc *products.Service, suppliersSvc *suppliers.Service, logger *slog.Logger, threshold int) *LowStockScanJob {
	return &LowStockScanJob{Products: productsSvc, Suppliers: suppliersSvc, Logger: logger, Threshold: threshold}
}

// Handle processes low-stock scan tasks.
func (j *LowStockScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Products == nil {
		return errors.New("lowstock scan: handler not configured")
	}
	var payload LowStockScanPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}
	threshold := payload.Threshold
	if threshold <= 0 {
		threshold = j.Threshold
	}

	logger := j.logger().With(slog.Int("threshold", threshold))
	logger.Info("starting low-stock scan")

	var (
		low     []products.Product
		vendors []suppliers.Supplier
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		low, err = j.Products.ListLowStock(gctx, threshold)
		return err
	})
	g.Go(func() error {
		if j.Suppliers == nil {
			return nil
		}
		var err error
		vendors, err = j.Suppliers.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("low-stock scan", slog.Any("error", err))
		return err
	}

	names := make(map[int64]string, len(vendors))
	for _, v := range vendors {
		names[v.ID] = v.Name
	}
	for _, p := range low {
		logger.Warn("low stock",
			slog.Int64("product_id", p.ID),
			slog.String("product", p.Name),
			slog.Int("quantity", p.Quantity),
			slog.String("supplier", names[p.SupplierID]),
		)
	}
	logger.Info("completed low-stock scan", slog.Int("flagged", len(low)))
	return nil
}

func (j *LowStockScanJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskLowStockScan))
	}
	return slog.Default().With(slog.String("job", TaskLowStockScan))
}
