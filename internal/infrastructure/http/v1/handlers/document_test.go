package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comercio/internal/core/apperror"
	"comercio/internal/core/types"
	"comercio/internal/domain"
	"comercio/internal/domain/documents/purchase"
	"comercio/internal/domain/documents/sale"
)

// --- Stubs backing real document services ---

type stubTxManager struct{}

func (stubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubPartnerChecker struct{}

func (stubPartnerChecker) Exists(ctx context.Context, cardCode string) (bool, error) {
	return true, nil
}

func (stubPartnerChecker) SupplierExists(ctx context.Context, cardCode string) (bool, error) {
	return true, nil
}

type stubRefChecker struct{}

func (stubRefChecker) Exists(ctx context.Context, id int) (bool, error) {
	return true, nil
}

type stubPriceResolver struct{}

func (stubPriceResolver) Prices(ctx context.Context, itemCodes []string) (map[string]types.Money, error) {
	prices := make(map[string]types.Money, len(itemCodes))
	for _, code := range itemCodes {
		prices[code] = types.MustMoney("10.00")
	}
	return prices, nil
}

type saleRepoStub struct {
	nextDocNum int64
	rows       []*sale.ListRow
}

func (r *saleRepoStub) Create(ctx context.Context, doc *sale.Sale) (int64, error) {
	docNum := r.nextDocNum
	r.nextDocNum++
	r.rows = append([]*sale.ListRow{{
		DocNum:       docNum,
		CardCode:     doc.CardCode,
		PartnerName:  "Corner Store",
		EmployeeCode: doc.EmployeeCode,
		EmployeeName: "Maria Lopez",
		SeriesID:     doc.SeriesID,
		SeriesName:   "Sales Main",
		Total:        doc.Total,
	}}, r.rows...)
	return docNum, nil
}

func (r *saleRepoStub) GetByDocNum(ctx context.Context, docNum int64) (*sale.Sale, error) {
	return nil, apperror.NewNotFound("sale", docNum)
}

func (r *saleRepoStub) GetLines(ctx context.Context, docNum int64) ([]sale.Line, error) {
	return nil, nil
}

func (r *saleRepoStub) SaveLines(ctx context.Context, docNum int64, lines []sale.Line) error {
	return nil
}

func (r *saleRepoStub) List(ctx context.Context, filter sale.ListFilter) (domain.ListResult[*sale.ListRow], error) {
	return domain.ListResult[*sale.ListRow]{
		Items:      r.rows,
		TotalCount: int64(len(r.rows)),
	}, nil
}

type purchaseRepoStub struct {
	nextDocNum int64
	rows       []*purchase.ListRow
}

func (r *purchaseRepoStub) Create(ctx context.Context, doc *purchase.Purchase) (int64, error) {
	docNum := r.nextDocNum
	r.nextDocNum++
	r.rows = append([]*purchase.ListRow{{
		DocNum:       docNum,
		CardCode:     doc.CardCode,
		PartnerName:  "Acme Supplies",
		EmployeeCode: doc.EmployeeCode,
		EmployeeName: "Maria Lopez",
		SeriesID:     doc.SeriesID,
		SeriesName:   "Purchases Main",
		Total:        doc.Total,
	}}, r.rows...)
	return docNum, nil
}

func (r *purchaseRepoStub) GetByDocNum(ctx context.Context, docNum int64) (*purchase.Purchase, error) {
	return nil, apperror.NewNotFound("purchase", docNum)
}

func (r *purchaseRepoStub) GetLines(ctx context.Context, docNum int64) ([]purchase.Line, error) {
	return nil, nil
}

func (r *purchaseRepoStub) SaveLines(ctx context.Context, docNum int64, lines []purchase.Line) error {
	return nil
}

func (r *purchaseRepoStub) List(ctx context.Context, filter purchase.ListFilter) (domain.ListResult[*purchase.ListRow], error) {
	return domain.ListResult[*purchase.ListRow]{
		Items:      r.rows,
		TotalCount: int64(len(r.rows)),
	}, nil
}

func newDocumentsRouter(saleRepo *saleRepoStub, purchaseRepo *purchaseRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler()

	saleSvc := sale.NewService(saleRepo, stubPartnerChecker{}, stubRefChecker{}, stubRefChecker{}, stubPriceResolver{}, stubTxManager{})
	purchaseSvc := purchase.NewService(purchaseRepo, stubPartnerChecker{}, stubRefChecker{}, stubRefChecker{}, stubTxManager{})

	saleHandler := NewSaleHandler(base, saleSvc)
	purchaseHandler := NewPurchaseHandler(base, purchaseSvc)

	r := gin.New()
	r.POST("/documents/sales", saleHandler.Register)
	r.GET("/documents/sales", saleHandler.List)
	r.POST("/documents/purchases", purchaseHandler.Register)
	r.GET("/documents/purchases", purchaseHandler.List)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestRegisterSale_RespondsWithDocumentNumber(t *testing.T) {
	router := newDocumentsRouter(&saleRepoStub{nextDocNum: 11}, &purchaseRepoStub{nextDocNum: 1})

	w := postJSON(router, "/documents/sales",
		`{"cardCode":"C-001","employeeCode":7,"seriesId":2,"lines":[{"itemCode":"A-001","quantity":2}]}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(11), body["documentNumber"])
	assert.Equal(t, "20.00", body["total"])
}

func TestRegisterPurchase_RespondsWithComputedTotal(t *testing.T) {
	router := newDocumentsRouter(&saleRepoStub{nextDocNum: 1}, &purchaseRepoStub{nextDocNum: 42})

	w := postJSON(router, "/documents/purchases",
		`{"cardCode":"S-001","employeeCode":7,"seriesId":1,"lines":[`+
			`{"itemCode":"A1","quantity":3,"price":"10.00","taxRate":12},`+
			`{"itemCode":"A2","quantity":1,"price":"5.50","taxRate":12}]}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(42), body["documentNumber"])
	assert.Equal(t, "35.50", body["total"])
}

func TestListDocuments_RespondsTopLevelArray(t *testing.T) {
	router := newDocumentsRouter(&saleRepoStub{nextDocNum: 11}, &purchaseRepoStub{nextDocNum: 42})

	w := postJSON(router, "/documents/sales",
		`{"cardCode":"C-001","employeeCode":7,"seriesId":2,"lines":[{"itemCode":"A-001","quantity":1}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/documents/sales", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows),
		"listing must be a top-level array")
	require.Len(t, rows, 1)
	assert.Equal(t, float64(11), rows[0]["docNum"])
	assert.Equal(t, "Corner Store", rows[0]["partnerName"])
	assert.Equal(t, "Maria Lopez", rows[0]["employeeName"])
	assert.Equal(t, "Sales Main", rows[0]["seriesName"])
}
