package suppliers

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rossilindo/estoque/internal/platform/httpx"
)

type memoryRepo struct {
	suppliers map[int64]Supplier
	nextID    int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{suppliers: make(map[int64]Supplier)}
}

func (r *memoryRepo) List(ctx context.Context) ([]Supplier, error) {
	result := make([]Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return Supplier{}, httpx.ErrNotFound
	}
	return s, nil
}

func (r *memoryRepo) Create(ctx context.Context, s Supplier) (Supplier, error) {
	r.nextID++
	s.ID = r.nextID
	r.suppliers[s.ID] = s
	return s, nil
}

func (r *memoryRepo) Update(ctx context.Context, id int64, req UpdateSupplierRequest) (Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return Supplier{}, httpx.ErrNotFound
	}
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.CNPJ != nil {
		s.CNPJ = *req.CNPJ
	}
	if req.Email != nil {
		s.Email = *req.Email
	}
	if req.Phone != nil {
		s.Phone = *req.Phone
	}
	r.suppliers[id] = s
	return s, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.suppliers[id]; !ok {
		return errors.New("no rows affected")
	}
	delete(r.suppliers, id)
	return nil
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Bump(ctx context.Context) error {
	c.calls++
	return nil
}

func validCreateRequest() CreateSupplierRequest {
	return CreateSupplierRequest{
		Name:  "Acme Distribuidora",
		CNPJ:  "12.345.678/0001-99",
		Email: "contato@acme.com.br",
		Phone: "(11) 91234-5678",
	}
}

func TestCreateSupplierRoundTrip(t *testing.T) {
	repo := newMemoryRepo()
	bump := &countingInvalidator{}
	svc := NewService(repo, bump, nil)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "Acme Distribuidora", created.Name)
	require.Equal(t, 1, bump.calls)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, created, listed[0])
}

func TestCreateSupplierRejectsEachBlankField(t *testing.T) {
	blank := map[string]func(*CreateSupplierRequest){
		"name":  func(r *CreateSupplierRequest) { r.Name = "" },
		"cnpj":  func(r *CreateSupplierRequest) { r.CNPJ = "" },
		"email": func(r *CreateSupplierRequest) { r.Email = "" },
		"phone": func(r *CreateSupplierRequest) { r.Phone = "" },
	}
	for field, clear := range blank {
		t.Run(field, func(t *testing.T) {
			repo := newMemoryRepo()
			svc := NewService(repo, nil, nil)

			req := validCreateRequest()
			clear(&req)

			_, err := svc.Create(context.Background(), req)
			require.ErrorIs(t, err, httpx.ErrValidation)
			require.Empty(t, repo.suppliers)
		})
	}
}

func TestUpdateMissingSupplierReturnsNotFound(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil)

	name := "renamed"
	_, err := svc.Update(context.Background(), 42, UpdateSupplierRequest{Name: &name})
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestUpdateSupplierPartial(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	phone := "(11) 95555-0000"
	updated, err := svc.Update(context.Background(), created.ID, UpdateSupplierRequest{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, phone, updated.Phone)
	require.Equal(t, created.Name, updated.Name)
	require.Equal(t, created.CNPJ, updated.CNPJ)
	require.Equal(t, created.Email, updated.Email)
}

func TestDeleteSupplierRemovesFromListing(t *testing.T) {
	repo := newMemoryRepo()
	bump := &countingInvalidator{}
	svc := NewService(repo, bump, nil)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.Equal(t, 2, bump.calls)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestDeleteMissingSupplierSurfacesStoreError(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil)

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	require.NotErrorIs(t, err, httpx.ErrNotFound)
}
