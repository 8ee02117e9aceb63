package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/rossilindo/estoque/internal/platform/httpx"
	"github.com/rossilindo/estoque/internal/products"
	"github.com/rossilindo/estoque/internal/suppliers"
)

type fakeProductRepo struct {
	products []products.Product
}

func (r *fakeProductRepo) List(ctx context.Context) ([]products.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) Get(ctx context.Context, id int64) (products.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return products.Product{}, httpx.ErrNotFound
}

func (r *fakeProductRepo) Create(ctx context.Context, p products.Product) (products.Product, error) {
	return p, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id int64, req products.UpdateProductRequest) (products.Product, error) {
	return products.Product{}, httpx.ErrNotFound
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	return errors.New("no rows affected")
}

func (r *fakeProductRepo) ListLowStock(ctx context.Context, threshold int) ([]products.Product, error) {
	low := make([]products.Product, 0)
	for _, p := range r.products {
		if p.Quantity <= threshold {
			low = append(low, p)
		}
	}
	return low, nil
}

type fakeSupplierRepo struct {
	suppliers []suppliers.Supplier
}

func (r *fakeSupplierRepo) List(ctx context.Context) ([]suppliers.Supplier, error) {
	return r.suppliers, nil
}

func (r *fakeSupplierRepo) Get(ctx context.Context, id int64) (suppliers.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return suppliers.Supplier{}, httpx.ErrNotFound
}

func (r *fakeSupplierRepo) Create(ctx context.Context, s suppliers.Supplier) (suppliers.Supplier, error) {
	return s, nil
}

func (r *fakeSupplierRepo) Update(ctx context.Context, id int64, req suppliers.UpdateSupplierRequest) (suppliers.Supplier, error) {
	return suppliers.Supplier{}, httpx.ErrNotFound
}

func (r *fakeSupplierRepo) Delete(ctx context.Context, id int64) error {
	return errors.New("no rows affected")
}

type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) warnings(msg string) []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []slog.Record
	for _, r := range h.records {
		if r.Level == slog.LevelWarn && r.Message == msg {
			out = append(out, r)
		}
	}
	return out
}

func newScanJob(handler *recordingHandler, threshold int) *LowStockScanJob {
	logger := slog.New(handler)
	productRepo := &fakeProductRepo{products: []products.Product{
		{ID: 1, Name: "Fita isolante", Quantity: 4, SupplierID: 1},
		{ID: 2, Name: "Martelo unha", Quantity: 18, SupplierID: 2},
		{ID: 3, Name: "Trena 5m", Quantity: 2, SupplierID: 1},
	}}
	supplierRepo := &fakeSupplierRepo{suppliers: []suppliers.Supplier{
		{ID: 1, Name: "Acme"},
		{ID: 2, Name: "Bravo"},
	}}
	return NewLowStockScanJob(
		products.NewService(productRepo, nil, logger),
		suppliers.NewService(supplierRepo, nil, logger),
		logger,
		threshold,
	)
}

func TestLowStockScanFlagsOnlyThresholdBreaches(t *testing.T) {
	handler := &recordingHandler{}
	job := newScanJob(handler, 5)

	task, err := NewLowStockScanTask(LowStockScanPayload{Threshold: 5})
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))

	warnings := handler.warnings("low stock")
	require.Len(t, warnings, 2)

	names := make(map[string]string)
	for _, rec := range warnings {
		var product, supplier string
		rec.Attrs(func(a slog.Attr) bool {
			switch a.Key {
			case "product":
				product = a.Value.String()
			case "supplier":
				supplier = a.Value.String()
			}
			return true
		})
		names[product] = supplier
	}
	require.Equal(t, map[string]string{
		"Fita isolante": "Acme",
		"Trena 5m":      "Acme",
	}, names)
}

func TestLowStockScanUsesConfiguredThresholdWhenPayloadEmpty(t *testing.T) {
	handler := &recordingHandler{}
	job := newScanJob(handler, 3)

	require.NoError(t, job.Handle(context.Background(), asynq.NewTask(TaskLowStockScan, nil)))
	require.Len(t, handler.warnings("low stock"), 1)
}

func TestLowStockScanBadPayloadSkipsRetry(t *testing.T) {
	handler := &recordingHandler{}
	job := newScanJob(handler, 5)

	err := job.Handle(context.Background(), asynq.NewTask(TaskLowStockScan, []byte("{not json")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}
