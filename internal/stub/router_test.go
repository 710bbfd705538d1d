package stub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/stub/store"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	s := store.New()
	if _, err := s.CreateUser("Admin", "admin@example.com", "admin123", domain.RoleAdmin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if _, err := s.CreateUser("Regular", "user@example.com", "user123", domain.RoleUser); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewRouter(s, testSecret, time.Hour, zerolog.Nop()), s
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler, email, password string) *http.Cookie {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return m
}

func TestLogin_IssuesCookieAndUserPayload(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"admin123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["message"] != "Login successful" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	user := body["data"].(map[string]any)["user"].(map[string]any)
	if user["email"] != "admin@example.com" || user["role"] != "ADMIN" {
		t.Fatalf("unexpected user payload %v", user)
	}

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("session cookie missing")
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "unauthorized" {
		t.Fatalf("expected unauthorized discriminator, got %v", body)
	}
	if body["message"] != "Invalid credentials" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestProductList_RequiresSession(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/product", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "unauthorized" || body["message"] != "Session expired" {
		t.Fatalf("unexpected envelope %v", body)
	}
}

func TestProductLifecycle_CacheFlag(t *testing.T) {
	h, _ := newTestRouter(t)
	cookie := login(t, h, "admin@example.com", "admin123")

	rec := doJSON(t, h, http.MethodPost, "/product",
		`{"product_name":"Widget","description":"A widget","price":"9.99","in_stock":5,"status":"Active"}`, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeBody(t, rec)["data"].(map[string]any)["created"].(map[string]any)
	id := int(created["id"].(float64))
	if id == 0 || created["product_name"] != "Widget" {
		t.Fatalf("unexpected created payload %v", created)
	}

	// First read after a mutation is a cache miss, repeats are hits.
	rec = doJSON(t, h, http.MethodGet, "/product", "", cookie)
	if body := decodeBody(t, rec); body["cache"] != false {
		t.Fatalf("expected cache miss, got %v", body["cache"])
	}
	rec = doJSON(t, h, http.MethodGet, "/product", "", cookie)
	if body := decodeBody(t, rec); body["cache"] != true {
		t.Fatalf("expected cache hit, got %v", body["cache"])
	}

	rec = doJSON(t, h, http.MethodPatch, "/product/"+strconv.Itoa(id),
		`{"product_name":"Widget II","price":"19.99","in_stock":2,"status":"Inactive"}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeBody(t, rec)["data"].(map[string]any)["updated"].(map[string]any)
	if updated["product_name"] != "Widget II" || updated["status"] != "Inactive" {
		t.Fatalf("unexpected updated payload %v", updated)
	}

	// Mutation invalidated the cache again.
	rec = doJSON(t, h, http.MethodGet, "/product", "", cookie)
	if body := decodeBody(t, rec); body["cache"] != false {
		t.Fatalf("expected cache miss after update, got %v", body["cache"])
	}

	rec = doJSON(t, h, http.MethodDelete, "/product/"+strconv.Itoa(id), "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Product deleted successfully" {
		t.Fatalf("unexpected delete message %v", body["message"])
	}
}

func TestProductCreate_ValidationFailure(t *testing.T) {
	h, _ := newTestRouter(t)
	cookie := login(t, h, "admin@example.com", "admin123")

	rec := doJSON(t, h, http.MethodPost, "/product", `{"price":"1.00"}`, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] == "unauthorized" {
		t.Fatalf("validation failure must not carry the auth discriminator: %v", body)
	}
}

func TestProductMutation_ForbiddenForRegularUser(t *testing.T) {
	h, _ := newTestRouter(t)
	cookie := login(t, h, "user@example.com", "user123")

	rec := doJSON(t, h, http.MethodPost, "/product",
		`{"product_name":"Widget","price":"9.99","in_stock":1}`, cookie)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	// Regular users can still read the catalog.
	rec = doJSON(t, h, http.MethodGet, "/product", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on read, got %d", rec.Code)
	}
}

func TestProductDelete_UnknownID(t *testing.T) {
	h, _ := newTestRouter(t)
	cookie := login(t, h, "admin@example.com", "admin123")

	rec := doJSON(t, h, http.MethodDelete, "/product/999", "", cookie)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserAdmin_AdminOnly(t *testing.T) {
	h, _ := newTestRouter(t)

	adminCookie := login(t, h, "admin@example.com", "admin123")
	userCookie := login(t, h, "user@example.com", "user123")

	rec := doJSON(t, h, http.MethodGet, "/user", "", userCookie)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for regular user, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/user", "", adminCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeBody(t, rec)["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(data))
	}
}

func TestUserAdmin_DeleteReturnsNoContent(t *testing.T) {
	h, s := newTestRouter(t)
	adminCookie := login(t, h, "admin@example.com", "admin123")

	victim, err := s.CreateUser("Victim", "victim@example.com", "victim123", domain.RoleUser)
	if err != nil {
		t.Fatalf("seed victim: %v", err)
	}

	rec := doJSON(t, h, http.MethodDelete, "/user/"+strconv.Itoa(victim.ID), "", adminCookie)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodDelete, "/user/"+strconv.Itoa(victim.ID), "", adminCookie)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", rec.Code)
	}
}

func TestSessionCookie_DiesWithDeletedAccount(t *testing.T) {
	h, s := newTestRouter(t)

	victim, err := s.CreateUser("Victim", "victim@example.com", "victim123", domain.RoleUser)
	if err != nil {
		t.Fatalf("seed victim: %v", err)
	}
	cookie := login(t, h, "victim@example.com", "victim123")

	if err := s.DeleteUser(victim.ID); err != nil {
		t.Fatalf("delete victim: %v", err)
	}

	rec := doJSON(t, h, http.MethodGet, "/product", "", cookie)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after account deletion, got %d", rec.Code)
	}
}

func TestRegister_DefaultsAndConflicts(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/auth/register",
		`{"email":"new@example.com","password":"secret1","name":"New User"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["message"] != "User registered successfully" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	rec = doJSON(t, h, http.MethodPost, "/auth/register",
		`{"email":"new@example.com","password":"secret1","name":"Again"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d", rec.Code)
	}

	cookie := login(t, h, "new@example.com", "secret1")
	rec = doJSON(t, h, http.MethodGet, "/auth/current-user", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeBody(t, rec)["data"].(map[string]any)
	if data["role"] != "USER" {
		t.Fatalf("expected USER default role, got %v", data["role"])
	}
}

func TestCurrentUser_WithoutCookieFails(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/auth/current-user", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h, _ := newTestRouter(t)
	cookie := login(t, h, "admin@example.com", "admin123")

	rec := doJSON(t, h, http.MethodGet, "/auth/logout", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Logout successful" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("session cookie not cleared")
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
