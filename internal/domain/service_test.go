package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comercio/internal/core/apperror"
)

// testItem is a minimal catalog entity for exercising the generic service.
type testItem struct {
	Code string
	Name string
}

func (i *testItem) Validate(ctx context.Context) error {
	if i.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	return nil
}

type testTxManager struct {
	calls int
}

func (m *testTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type testRepo struct {
	items   map[string]*testItem
	created *testItem
	deleted []string
	getErr  error
}

func newTestRepo() *testRepo {
	return &testRepo{items: make(map[string]*testItem)}
}

func (r *testRepo) Create(ctx context.Context, item *testItem) error {
	r.created = item
	r.items[item.Code] = item
	return nil
}

func (r *testRepo) GetByKey(ctx context.Context, code string) (*testItem, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if item, ok := r.items[code]; ok {
		return item, nil
	}
	return nil, apperror.NewNotFound("row", code)
}

func (r *testRepo) Update(ctx context.Context, item *testItem) error {
	r.items[item.Code] = item
	return nil
}

func (r *testRepo) Delete(ctx context.Context, code string) error {
	r.deleted = append(r.deleted, code)
	delete(r.items, code)
	return nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) (ListResult[*testItem], error) {
	out := make([]*testItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return ListResult[*testItem]{Items: out, TotalCount: int64(len(out))}, nil
}

func (r *testRepo) Exists(ctx context.Context, code string) (bool, error) {
	_, ok := r.items[code]
	return ok, nil
}

func newService(repo *testRepo) (*CatalogService[*testItem, string], *testTxManager) {
	txm := &testTxManager{}
	svc := NewCatalogService(CatalogServiceConfig[*testItem, string]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "item",
	})
	return svc, txm
}

func TestCatalogService_CreateRunsInTransaction(t *testing.T) {
	repo := newTestRepo()
	svc, txm := newService(repo)

	err := svc.Create(context.Background(), &testItem{Code: "X", Name: "Thing"})
	require.NoError(t, err)
	assert.Equal(t, 1, txm.calls)
	assert.NotNil(t, repo.created)
}

func TestCatalogService_CreateValidationSkipsStore(t *testing.T) {
	repo := newTestRepo()
	svc, txm := newService(repo)

	err := svc.Create(context.Background(), &testItem{Code: "X"})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, 0, txm.calls)
}

func TestCatalogService_BeforeCreateHookRejects(t *testing.T) {
	repo := newTestRepo()
	svc, txm := newService(repo)
	svc.Hooks().OnBeforeCreate(func(ctx context.Context, item *testItem) error {
		return apperror.NewForbidden("rejected")
	})

	err := svc.Create(context.Background(), &testItem{Code: "X", Name: "Thing"})
	require.Error(t, err)
	assert.Equal(t, 0, txm.calls)
	assert.Nil(t, repo.created)
}

func TestCatalogService_GetByKeyMapsNotFoundToEntityName(t *testing.T) {
	repo := newTestRepo()
	svc, _ := newService(repo)

	_, err := svc.GetByKey(context.Background(), "missing")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	assert.Equal(t, "item", appErr.Details["entity"])
}

func TestCatalogService_GetByKeyWrapsUnknownError(t *testing.T) {
	repo := newTestRepo()
	repo.getErr = errors.New("connection reset")
	svc, _ := newService(repo)

	_, err := svc.GetByKey(context.Background(), "X")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInternal, appErr.Code)
}

func TestCatalogService_DeleteLoadsEntityForHooks(t *testing.T) {
	repo := newTestRepo()
	repo.items["X"] = &testItem{Code: "X", Name: "Thing"}
	svc, _ := newService(repo)

	var seen *testItem
	svc.Hooks().OnBeforeDelete(func(ctx context.Context, item *testItem) error {
		seen = item
		return nil
	})

	require.NoError(t, svc.Delete(context.Background(), "X"))
	require.NotNil(t, seen)
	assert.Equal(t, "Thing", seen.Name)
	assert.Equal(t, []string{"X"}, repo.deleted)
}

func TestCatalogService_DeleteMissing(t *testing.T) {
	svc, txm := newService(newTestRepo())

	err := svc.Delete(context.Background(), "missing")
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, 0, txm.calls)
}
