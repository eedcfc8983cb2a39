package sale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comercio/internal/core/apperror"
	"comercio/internal/core/types"
	"comercio/internal/domain"
)

// --- Fakes ---

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeRepo struct {
	nextDocNum int64
	created    *Sale
	savedLines []Line

	header *Sale
	lines  []Line

	// Joined names for listing rows built on Create
	partnerNames  map[string]string
	employeeNames map[int]string
	seriesNames   map[int]string
	rows          []*ListRow
}

func (r *fakeRepo) Create(ctx context.Context, doc *Sale) (int64, error) {
	r.created = doc
	docNum := r.nextDocNum
	r.nextDocNum++
	r.rows = append([]*ListRow{{
		DocNum:       docNum,
		CardCode:     doc.CardCode,
		PartnerName:  r.partnerNames[doc.CardCode],
		EmployeeCode: doc.EmployeeCode,
		EmployeeName: r.employeeNames[doc.EmployeeCode],
		SeriesID:     doc.SeriesID,
		SeriesName:   r.seriesNames[doc.SeriesID],
		Total:        doc.Total,
	}}, r.rows...)
	return docNum, nil
}

func (r *fakeRepo) GetByDocNum(ctx context.Context, docNum int64) (*Sale, error) {
	if r.header == nil {
		return nil, apperror.NewNotFound("sale", docNum)
	}
	return r.header, nil
}

func (r *fakeRepo) GetLines(ctx context.Context, docNum int64) ([]Line, error) {
	return r.lines, nil
}

func (r *fakeRepo) SaveLines(ctx context.Context, docNum int64, lines []Line) error {
	r.savedLines = lines
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*ListRow], error) {
	return domain.ListResult[*ListRow]{
		Items:      r.rows,
		TotalCount: int64(len(r.rows)),
	}, nil
}

type fakePartnerChecker struct {
	known map[string]bool
	asked []string
}

func (c *fakePartnerChecker) Exists(ctx context.Context, cardCode string) (bool, error) {
	c.asked = append(c.asked, cardCode)
	return c.known[cardCode], nil
}

type fakeChecker struct {
	ok bool
}

func (c *fakeChecker) Exists(ctx context.Context, id int) (bool, error) {
	return c.ok, nil
}

type fakePriceResolver struct {
	prices map[string]types.Money
	asked  []string
}

func (p *fakePriceResolver) Prices(ctx context.Context, itemCodes []string) (map[string]types.Money, error) {
	p.asked = itemCodes
	return p.prices, nil
}

func partnerWith(codes ...string) *fakePartnerChecker {
	known := make(map[string]bool, len(codes))
	for _, code := range codes {
		known[code] = true
	}
	return &fakePartnerChecker{known: known}
}

func newTestService(repo *fakeRepo, partners *fakePartnerChecker, prices *fakePriceResolver) (*Service, *fakeTxManager) {
	txm := &fakeTxManager{}
	svc := NewService(repo, partners, &fakeChecker{ok: true}, &fakeChecker{ok: true}, prices, txm)
	return svc, txm
}

// --- Tests ---

func TestRegister_ResolvesPricesFromCatalog(t *testing.T) {
	repo := &fakeRepo{nextDocNum: 100}
	prices := &fakePriceResolver{prices: map[string]types.Money{
		"A-001": types.MustMoney("10.00"),
		"A-002": types.MustMoney("3.50"),
	}}
	svc, txm := newTestService(repo, partnerWith("C-001"), prices)

	doc := NewSale("C-001", 7, 2)
	doc.AddLine("A-001", 3)
	doc.AddLine("A-002", 2)

	err := svc.Register(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, int64(100), doc.DocNum)
	assert.Equal(t, 1, txm.calls)

	assert.True(t, doc.Lines[0].Price.Equal(types.MustMoney("10.00")))
	assert.True(t, doc.Lines[0].LineTotal.Equal(types.MustMoney("30.00")))
	assert.True(t, doc.Lines[1].LineTotal.Equal(types.MustMoney("7.00")))
	assert.True(t, doc.Total.Equal(types.MustMoney("37.00")))

	assert.Equal(t, 1, doc.Lines[0].LineNo)
	assert.Equal(t, 2, doc.Lines[1].LineNo)
	require.Len(t, repo.savedLines, 2)
}

func TestRegister_DeduplicatesPriceLookups(t *testing.T) {
	repo := &fakeRepo{nextDocNum: 1}
	prices := &fakePriceResolver{prices: map[string]types.Money{
		"A-001": types.MustMoney("10.00"),
	}}
	svc, _ := newTestService(repo, partnerWith("C-001"), prices)

	doc := NewSale("C-001", 7, 2)
	doc.AddLine("A-001", 1)
	doc.AddLine("A-001", 4)

	err := svc.Register(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"A-001"}, prices.asked)
	assert.True(t, doc.Total.Equal(types.MustMoney("50.00")))
}

func TestRegister_AcceptsAnyPartnerKind(t *testing.T) {
	// Supplier-kind partners may buy too; only bare existence is checked.
	repo := &fakeRepo{nextDocNum: 1}
	partners := partnerWith("S-001")
	prices := &fakePriceResolver{prices: map[string]types.Money{
		"A-001": types.MustMoney("10.00"),
	}}
	svc, _ := newTestService(repo, partners, prices)

	doc := NewSale("S-001", 7, 2)
	doc.AddLine("A-001", 1)

	err := svc.Register(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"S-001"}, partners.asked)
	require.NotNil(t, repo.created)
}

func TestRegister_RejectsUnknownArticle(t *testing.T) {
	repo := &fakeRepo{nextDocNum: 1}
	prices := &fakePriceResolver{prices: map[string]types.Money{}}
	svc, _ := newTestService(repo, partnerWith("C-001"), prices)

	doc := NewSale("C-001", 7, 2)
	doc.AddLine("GHOST", 1)

	err := svc.Register(context.Background(), doc)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeReferential, appErr.Code)
	assert.Equal(t, "GHOST", appErr.Details["key"])
	assert.Nil(t, repo.created, "header must not be written when a price is missing")
}

func TestRegister_RejectsUnknownPartner(t *testing.T) {
	repo := &fakeRepo{nextDocNum: 1}
	prices := &fakePriceResolver{prices: map[string]types.Money{
		"A-001": types.MustMoney("10.00"),
	}}
	svc, _ := newTestService(repo, partnerWith(), prices)

	doc := NewSale("MISSING", 7, 2)
	doc.AddLine("A-001", 1)

	err := svc.Register(context.Background(), doc)
	require.Error(t, err)
	assert.True(t, apperror.IsReferential(err))

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "partner", appErr.Details["entity"])
	assert.Nil(t, repo.created)
}

func TestRegister_ValidatesBeforeStore(t *testing.T) {
	repo := &fakeRepo{nextDocNum: 1}
	prices := &fakePriceResolver{prices: map[string]types.Money{}}
	svc, txm := newTestService(repo, partnerWith("C-001"), prices)

	doc := NewSale("C-001", 7, 2) // no lines

	err := svc.Register(context.Background(), doc)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, 0, txm.calls)
}

func TestRegister_ThenListShowsDocument(t *testing.T) {
	repo := &fakeRepo{
		nextDocNum:    7,
		partnerNames:  map[string]string{"C-001": "Corner Store"},
		employeeNames: map[int]string{7: "Maria Lopez"},
		seriesNames:   map[int]string{2: "Sales Main"},
	}
	prices := &fakePriceResolver{prices: map[string]types.Money{
		"A-001": types.MustMoney("10.00"),
	}}
	svc, _ := newTestService(repo, partnerWith("C-001"), prices)

	first := NewSale("C-001", 7, 2)
	first.AddLine("A-001", 2)
	require.NoError(t, svc.Register(context.Background(), first))

	second := NewSale("C-001", 7, 2)
	second.AddLine("A-001", 1)
	require.NoError(t, svc.Register(context.Background(), second))

	result, err := svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	// Newest first, carrying the joined display names
	assert.Equal(t, second.DocNum, result.Items[0].DocNum)
	assert.Equal(t, first.DocNum, result.Items[1].DocNum)
	assert.Equal(t, "Corner Store", result.Items[0].PartnerName)
	assert.Equal(t, "Maria Lopez", result.Items[0].EmployeeName)
	assert.Equal(t, "Sales Main", result.Items[0].SeriesName)
	assert.True(t, result.Items[1].Total.Equal(types.MustMoney("20.00")))
}

func TestGetByDocNum_LoadsLines(t *testing.T) {
	repo := &fakeRepo{
		header: &Sale{DocNum: 9, CardCode: "C-001"},
		lines: []Line{
			{DocNum: 9, LineNo: 1, ItemCode: "A-001", Quantity: 1},
		},
	}
	svc, _ := newTestService(repo, partnerWith("C-001"), &fakePriceResolver{})

	doc, err := svc.GetByDocNum(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "A-001", doc.Lines[0].ItemCode)
}
