package series

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comercio/internal/core/apperror"
	"comercio/internal/domain"
)

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeRepo struct {
	created *Series
	updated *Series
	stored  *Series
}

func (r *fakeRepo) Create(ctx context.Context, s *Series) error {
	r.created = s
	return nil
}

func (r *fakeRepo) GetByKey(ctx context.Context, id int) (*Series, error) {
	if r.stored == nil || r.stored.ID != id {
		return nil, apperror.NewNotFound("series", id)
	}
	return r.stored, nil
}

func (r *fakeRepo) Update(ctx context.Context, s *Series) error {
	r.updated = s
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int) error {
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Series], error) {
	return domain.ListResult[*Series]{}, nil
}

func (r *fakeRepo) Exists(ctx context.Context, id int) (bool, error) {
	return r.stored != nil && r.stored.ID == id, nil
}

type fakeBranchChecker struct {
	ok bool
}

func (c *fakeBranchChecker) Exists(ctx context.Context, id int) (bool, error) {
	return c.ok, nil
}

func TestCreate_ChecksBranch(t *testing.T) {
	repo := &fakeRepo{}
	txm := &fakeTxManager{}
	svc := NewService(repo, txm, &fakeBranchChecker{ok: true})

	s := NewSeries("Sales North", DocTypeSale, 3)
	require.NoError(t, svc.Create(context.Background(), s))

	assert.Equal(t, 1, txm.calls)
	require.NotNil(t, repo.created)
	assert.Equal(t, 3, repo.created.BranchID)
}

func TestCreate_RejectsMissingBranch(t *testing.T) {
	repo := &fakeRepo{}
	txm := &fakeTxManager{}
	svc := NewService(repo, txm, &fakeBranchChecker{ok: false})

	err := svc.Create(context.Background(), NewSeries("Sales North", DocTypeSale, 99))
	require.Error(t, err)

	assert.True(t, apperror.IsReferential(err))
	assert.Nil(t, repo.created)
	assert.Equal(t, 0, txm.calls)
}

func TestUpdate_RejectsMissingBranch(t *testing.T) {
	stored := NewSeries("Sales North", DocTypeSale, 3)
	stored.ID = 1
	repo := &fakeRepo{stored: stored}
	svc := NewService(repo, &fakeTxManager{}, &fakeBranchChecker{ok: false})

	stored.BranchID = 99
	err := svc.Update(context.Background(), stored)
	require.Error(t, err)

	assert.True(t, apperror.IsReferential(err))
	assert.Nil(t, repo.updated)
}

func TestCreate_ValidatesDocType(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeTxManager{}, &fakeBranchChecker{ok: true})

	err := svc.Create(context.Background(), NewSeries("Bad", "invoice", 3))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, "docType", appErr.Details["field"])
}
