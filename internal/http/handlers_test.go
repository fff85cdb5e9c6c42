package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/konnichiwabon/inventory/internal/auth"
	api "github.com/konnichiwabon/inventory/internal/http"
	handler "github.com/konnichiwabon/inventory/internal/http/handlers"
	"github.com/konnichiwabon/inventory/internal/http/ratelimit"
	"github.com/konnichiwabon/inventory/internal/metrics"
	"github.com/konnichiwabon/inventory/internal/models"
	"github.com/konnichiwabon/inventory/internal/repo"
)

type testEnv struct {
	router   http.Handler
	products *repo.InMemoryProductRepository
	users    *repo.InMemoryUserRepository
	issuer   *auth.TokenIssuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	products := repo.NewInMemoryProductRepository()
	users := repo.NewInMemoryUserRepository()
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	server := handler.NewServer(products, users, issuer, zap.NewNop().Sugar())
	limiters := ratelimit.NewRegistry(1000, 1000)

	return &testEnv{
		router:   api.NewRouter(server, issuer, limiters, nil),
		products: products,
		users:    users,
		issuer:   issuer,
	}
}

func (e *testEnv) token(t *testing.T, userID int) string {
	t.Helper()
	token, err := e.issuer.Generate(models.User{ID: userID, Username: "tester", Role: "user"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createProduct(t *testing.T, token string, p handler.ProductRequest) handler.ProductResponse {
	t.Helper()
	w := e.request(t, http.MethodPost, "/products", token, p)
	if w.Code != http.StatusCreated {
		t.Fatalf("product creation failed: %d %s", w.Code, w.Body.String())
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode product response: %v", err)
	}
	return resp
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/register", "", handler.CredentialsRequest{
		Username: "alice", Password: "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var reg handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&reg); err != nil || reg.Token == "" {
		t.Fatalf("expected a token in register result, got %+v (err %v)", reg, err)
	}

	w = env.request(t, http.MethodPost, "/login", "", handler.CredentialsRequest{
		Username: "alice", Password: "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = env.request(t, http.MethodPost, "/login", "", handler.CredentialsRequest{
		Username: "alice", Password: "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", w.Code)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	creds := handler.CredentialsRequest{Username: "alice", Password: "secret123"}

	if w := env.request(t, http.MethodPost, "/register", "", creds); w.Code != http.StatusCreated {
		t.Fatalf("first registration failed: %d", w.Code)
	}
	if w := env.request(t, http.MethodPost, "/register", "", creds); w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate username, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/dashboard/metrics", "/dashboard/recent", "/products"} {
		w := env.request(t, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: expected 401, got %d", path, w.Code)
		}
	}

	w := env.request(t, http.MethodGet, "/products", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestProductCRUDOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token(t, 1)
	bob := env.token(t, 2)

	created := env.createProduct(t, alice, handler.ProductRequest{
		Name: "Keyboard", Sku: "KB-01", Price: price("40.00"), Quantity: 10,
	})
	if created.StockLevel != "in_stock" {
		t.Errorf("expected in_stock, got %s", created.StockLevel)
	}

	// Bob cannot see or touch Alice's product.
	if w := env.request(t, http.MethodGet, "/products/1", bob, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for foreign product read, got %d", w.Code)
	}
	if w := env.request(t, http.MethodDelete, "/products/1", bob, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for foreign product delete, got %d", w.Code)
	}

	// Alice can update and delete it.
	w := env.request(t, http.MethodPut, "/products/1", alice, handler.ProductRequest{
		Name: "Keyboard", Sku: "KB-01", Price: price("45.00"), Quantity: 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", w.Code, w.Body.String())
	}
	var updated handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.StockLevel != "low_stock" {
		t.Errorf("expected low_stock after update, got %s", updated.StockLevel)
	}

	if w := env.request(t, http.MethodDelete, "/products/1", alice, nil); w.Code != http.StatusNoContent {
		t.Errorf("expected 204 on delete, got %d", w.Code)
	}
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, 1)

	w := env.request(t, http.MethodPost, "/products", token, handler.ProductRequest{
		Name: "", Price: price("-1"), Quantity: -2,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var errs []handler.ProductValidationError
	if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
		t.Fatalf("failed to decode validation errors: %v", err)
	}
	if len(errs) != 3 {
		t.Errorf("expected 3 validation errors, got %d: %+v", len(errs), errs)
	}
}

func TestDashboardMetrics(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token(t, 1)
	bob := env.token(t, 2)

	// Two in stock, two low (one against the default threshold, one
	// against a custom threshold of 3), two out of stock.
	threshold := 3
	products := []handler.ProductRequest{
		{Name: "Keyboard", Price: price("10.10"), Quantity: 10},
		{Name: "Mouse", Price: price("10.20"), Quantity: 1},
		{Name: "Monitor", Price: price("10.30"), Quantity: 0},
		{Name: "Cable", Price: price("2.00"), Quantity: 3, LowStockAt: &threshold},
		{Name: "Adapter", Price: price("5.00"), Quantity: 4, LowStockAt: &threshold},
		{Name: "Dock", Price: price("99.99"), Quantity: 0, LowStockAt: &threshold},
	}
	for _, p := range products {
		env.createProduct(t, alice, p)
	}
	// Bob's product must not leak into Alice's metrics.
	env.createProduct(t, bob, handler.ProductRequest{Name: "Webcam", Price: price("500.00"), Quantity: 1})

	w := env.request(t, http.MethodGet, "/dashboard/metrics", alice, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var snap metrics.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}

	if snap.TotalProducts != 6 {
		t.Errorf("expected 6 products, got %d", snap.TotalProducts)
	}
	// 10.10*10 + 10.20*1 + 2.00*3 + 5.00*4 = 101.00 + 10.20 + 6.00 + 20.00
	if want := price("137.20"); !snap.TotalValue.Equal(want) {
		t.Errorf("expected total value %s, got %s", want, snap.TotalValue)
	}
	wantBuckets := metrics.StockBuckets{OutOfStock: 2, LowStock: 2, InStock: 2}
	if snap.StockBuckets != wantBuckets {
		t.Errorf("buckets = %+v, want %+v", snap.StockBuckets, wantBuckets)
	}
	wantPct := metrics.StockPercentages{OutOfStock: 33, LowStock: 33, InStock: 33}
	if snap.StockPercentages != wantPct {
		t.Errorf("percentages = %+v, want %+v", snap.StockPercentages, wantPct)
	}

	if len(snap.WeeklySeries) != 12 {
		t.Fatalf("expected 12 weekly points, got %d", len(snap.WeeklySeries))
	}
	counted := 0
	for _, p := range snap.WeeklySeries {
		counted += p.Count
	}
	if counted != 6 {
		t.Errorf("weekly series counted %d products, want 6", counted)
	}
	if snap.WeeklySeries[11].Count != 6 {
		t.Errorf("expected all products in the current week, got %d", snap.WeeklySeries[11].Count)
	}
}

func TestDashboardMetricsEmptyInventory(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, 1)

	w := env.request(t, http.MethodGet, "/dashboard/metrics", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var snap metrics.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}

	if snap.TotalProducts != 0 {
		t.Errorf("expected 0 products, got %d", snap.TotalProducts)
	}
	if !snap.TotalValue.IsZero() {
		t.Errorf("expected zero total value, got %s", snap.TotalValue)
	}
	if snap.StockPercentages != (metrics.StockPercentages{}) {
		t.Errorf("expected all-zero percentages, got %+v", snap.StockPercentages)
	}
	if len(snap.WeeklySeries) != 12 {
		t.Fatalf("expected 12 weekly points, got %d", len(snap.WeeklySeries))
	}
	for i, p := range snap.WeeklySeries {
		if p.Count != 0 {
			t.Errorf("week %d: expected zero count, got %d", i, p.Count)
		}
	}
}

func TestDashboardRecent(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, 1)

	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for _, n := range names {
		env.createProduct(t, token, handler.ProductRequest{Name: n, Price: price("1.00"), Quantity: 0})
	}

	w := env.request(t, http.MethodGet, "/dashboard/recent", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var recent []handler.RecentProductResponse
	if err := json.NewDecoder(w.Body).Decode(&recent); err != nil {
		t.Fatalf("failed to decode recent products: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 recent products, got %d", len(recent))
	}
	for _, p := range recent {
		if p.StockLevel != "out_of_stock" {
			t.Errorf("product %s: expected out_of_stock, got %s", p.Name, p.StockLevel)
		}
	}
}

func TestFilterProducts(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, 1)

	env.createProduct(t, token, handler.ProductRequest{Name: "Keyboard", Price: price("40.00"), Quantity: 10})
	env.createProduct(t, token, handler.ProductRequest{Name: "Mouse", Price: price("20.00"), Quantity: 1})
	env.createProduct(t, token, handler.ProductRequest{Name: "Monitor", Price: price("150.00"), Quantity: 2})

	w := env.request(t, http.MethodGet, "/products/search?minPrice=30", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result handler.ProductsSearchResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode search result: %v", err)
	}
	if result.Meta.TotalCount != 2 || len(result.Data) != 2 {
		t.Errorf("expected 2 matches, got meta=%d len=%d", result.Meta.TotalCount, len(result.Data))
	}

	if w := env.request(t, http.MethodGet, "/products/search?limit=0", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero limit, got %d", w.Code)
	}
}

func TestRateLimitRejects(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	users := repo.NewInMemoryUserRepository()
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	server := handler.NewServer(products, users, issuer, zap.NewNop().Sugar())
	router := api.NewRouter(server, issuer, ratelimit.NewRegistry(1, 2), nil)

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{}"))
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("expected third request to be rate limited, got %d", last)
	}
}
