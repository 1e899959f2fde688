package inventory

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *chi.Mux
	repo   Repository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	repo, _ := newTestRepo(t)
	router := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(router)
	return &testServer{router: router, repo: repo}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s *testServer) sendJSON(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func TestIndex_EmptyStore(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.get("/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>PC Store - PC Store</title>")
	assert.Contains(t, body, EmptyTableMessage)
	assert.Contains(t, body, `<strong id="totalProducts">0</strong>`)
	assert.Contains(t, body, `<strong id="totalValue">$0.00</strong>`)
}

func TestIndex_ShowsKnownNoticeOnly(t *testing.T) {
	srv := newTestServer(t)

	assert.Contains(t, srv.get("/?notice=config-saved").Body.String(), "✓ Configuration saved successfully!")
	assert.NotContains(t, srv.get("/?notice=bogus").Body.String(), `class="notice`)
}

func TestAddProduct_Form(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.postForm("/products", url.Values{
		"name": {"<script>alert(1)</script>"}, "category": {"Laptop"}, "sku": {"X1"}, "price": {"100"}, "stock": {"2"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?notice=product-added", rec.Header().Get("Location"))

	products := srv.repo.LoadProducts(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "Laptop", products[0].Category)

	body := srv.get("/?notice=product-added").Body.String()
	assert.Contains(t, body, "✓ Product added successfully!")
	assert.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "$236.00")
}

func TestAddProduct_FormRejectsEmptyName(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.postForm("/products", url.Values{"name": {"  "}, "sku": {"KEEP-ME"}, "price": {"10"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please enter a product name")
	assert.Contains(t, body, `value="KEEP-ME"`)
	assert.Empty(t, srv.repo.LoadProducts(context.Background()))
}

func TestAddProduct_FormRejectsNegativePrice(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.postForm("/products", url.Values{"name": {"GPU"}, "price": {"-1"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a valid price")
	assert.Empty(t, srv.repo.LoadProducts(context.Background()))
}

func TestDeleteProduct_Form(t *testing.T) {
	srv := newTestServer(t)
	seedProducts(t, srv.repo, "A", "B", "C")

	rec := srv.postForm("/products/1/delete", url.Values{"id": {"id-B"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"A", "C"}, names(srv.repo.LoadProducts(context.Background())))

	rec = srv.postForm("/products/abc/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"A", "C"}, names(srv.repo.LoadProducts(context.Background())))
}

func TestClearProducts_Form(t *testing.T) {
	srv := newTestServer(t)
	seedProducts(t, srv.repo, "A", "B")

	rec := srv.postForm("/products/clear", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Len(t, srv.repo.LoadProducts(context.Background()), 2)

	rec = srv.postForm("/products/clear", url.Values{"confirm": {"yes"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?notice=products-cleared", rec.Header().Get("Location"))
	assert.Empty(t, srv.repo.LoadProducts(context.Background()))
}

func TestSaveAndResetConfig_Form(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	rec := srv.postForm("/config", url.Values{
		"storeName": {"Byte Shop"}, "storeEmail": {"a@b.c"}, "currency": {"K"},
		"taxRate": {"16"}, "categories": {"Phones\nTablets\n"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?notice=config-saved", rec.Header().Get("Location"))
	assert.Equal(t, "Byte Shop", srv.repo.LoadConfig(ctx).StoreName)

	body := srv.get("/").Body.String()
	assert.Contains(t, body, "<title>Byte Shop - PC Store</title>")
	assert.Contains(t, body, `<dd id="displayTaxRate">16%</dd>`)
	assert.Contains(t, body, `<option value="Tablets">Tablets</option>`)

	rec = srv.postForm("/config/reset", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "Byte Shop", srv.repo.LoadConfig(ctx).StoreName)

	rec = srv.postForm("/config/reset", url.Values{"confirm": {"yes"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?notice=config-reset", rec.Header().Get("Location"))
	assert.Equal(t, DefaultConfiguration(), srv.repo.LoadConfig(ctx))
}

func TestAPI_Products(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.sendJSON(http.MethodPost, "/api/v1/inventory/products", `{"name":"CPU","category":"Components","price":100,"stock":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	rec = srv.sendJSON(http.MethodPost, "/api/v1/inventory/products", `{"name":"RAM","price":"50"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.sendJSON(http.MethodPost, "/api/v1/inventory/products", `{"name":"","price":1}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"Please enter a product name"}`, rec.Body.String())

	rec = srv.get("/api/v1/inventory/products")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, []string{"CPU", "RAM"}, names(list))
	assert.Equal(t, Number(1), list[1].Stock)

	rec = srv.get("/api/v1/inventory/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 3.0, stats.TotalStock)
	assert.Equal(t, "$295.00", stats.Formatted.TotalValue)

	rec = srv.do(httptest.NewRequest(http.MethodDelete, "/api/v1/inventory/products/7", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(httptest.NewRequest(http.MethodDelete, "/api/v1/inventory/products/0", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"RAM"}, names(srv.repo.LoadProducts(context.Background())))

	rec = srv.do(httptest.NewRequest(http.MethodDelete, "/api/v1/inventory/products", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, srv.repo.LoadProducts(context.Background()))
}

func TestAPI_Config(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.get("/api/v1/inventory/config")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"storeName":"PC Store","storeEmail":"","currency":"$","taxRate":18,
		"categories":["Desktop","Laptop","Components","Peripherals"]}`, rec.Body.String())

	rec = srv.sendJSON(http.MethodPut, "/api/v1/inventory/config", `{"storeName":"Shop","taxRate":"12.5","categories":[" ",""]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"storeName":"Shop","storeEmail":"","currency":"$","taxRate":12.5,"categories":["General"]}`, rec.Body.String())

	rec = srv.sendJSON(http.MethodPut, "/api/v1/inventory/config", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(httptest.NewRequest(http.MethodPost, "/api/v1/inventory/config/reset", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, DefaultConfiguration(), srv.repo.LoadConfig(context.Background()))
}

func TestAPI_StatsStayEncodableForHugeValues(t *testing.T) {
	srv := newTestServer(t)
	require.NoError(t, srv.repo.SaveProducts(context.Background(), []Product{
		{Name: "Mainframe", Price: 1e308, Stock: 1e10},
	}))

	rec := srv.get("/api/v1/inventory/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, math.MaxFloat64, stats.TotalValue)

	assert.NotContains(t, srv.get("/").Body.String(), "Inf")
}

func TestRespond_EncodeFailureIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	respond(rec, http.StatusOK, math.Inf(1))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
