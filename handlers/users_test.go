package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-ordering-api/auth"
	"food-ordering-api/handlers"
	"food-ordering-api/models"
	"food-ordering-api/routes"
	"food-ordering-api/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Restaurant{}, &models.MenuItem{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	tokens := auth.NewTokenService("test-secret", time.Hour)
	catalog := store.NewCatalogStore(db)

	r := gin.New()
	routes.SetupRoutes(r,
		handlers.NewUserHandler(store.NewUserStore(db), tokens),
		handlers.NewRestaurantHandler(catalog),
		handlers.NewMenuHandler(catalog),
		tokens,
	)
	return r, tokens
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestUserEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	register := map[string]string{
		"username":  "alice",
		"email":     "alice@x.com",
		"password":  "pw123",
		"full_name": "Alice Smith",
	}

	var token string

	t.Run("register returns the user without credentials", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users/register", "", register)
		if w.Code != http.StatusCreated {
			t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["username"] != "alice" || body["email"] != "alice@x.com" {
			t.Errorf("unexpected user payload: %v", body)
		}
		if body["is_active"] != true {
			t.Errorf("expected is_active true, got %v", body["is_active"])
		}
		for _, key := range []string{"password", "password_hash", "hashed_password"} {
			if _, ok := body[key]; ok {
				t.Errorf("response must not expose %q", key)
			}
		}
	})

	t.Run("duplicate registrations conflict", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users/register", "", map[string]string{
			"username": "alice", "email": "other@x.com", "password": "pw123",
		})
		if w.Code != http.StatusConflict {
			t.Errorf("duplicate username status = %d", w.Code)
		}

		w = doJSON(t, r, http.MethodPost, "/users/register", "", map[string]string{
			"username": "bob", "email": "alice@x.com", "password": "pw123",
		})
		if w.Code != http.StatusConflict {
			t.Errorf("duplicate email status = %d", w.Code)
		}
	})

	t.Run("register rejects malformed payloads", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users/register", "", map[string]string{
			"username": "carol", "email": "not-an-email", "password": "pw123",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("invalid email status = %d", w.Code)
		}
	})

	t.Run("login failures are indistinguishable", func(t *testing.T) {
		wrongPass := doJSON(t, r, http.MethodPost, "/users/login", "", map[string]string{
			"username": "alice", "password": "nope",
		})
		unknownUser := doJSON(t, r, http.MethodPost, "/users/login", "", map[string]string{
			"username": "nobody", "password": "pw123",
		})
		if wrongPass.Code != http.StatusUnauthorized || unknownUser.Code != http.StatusUnauthorized {
			t.Fatalf("statuses = %d, %d", wrongPass.Code, unknownUser.Code)
		}
		if wrongPass.Body.String() != unknownUser.Body.String() {
			t.Error("login failure bodies must match exactly")
		}
	})

	t.Run("login returns a bearer token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users/login", "", map[string]string{
			"username": "alice", "password": "pw123",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["token_type"] != "bearer" {
			t.Errorf("token_type = %v", body["token_type"])
		}
		token, _ = body["access_token"].(string)
		if token == "" {
			t.Fatal("login response missing access_token")
		}
	})

	t.Run("me returns the authenticated user", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/me", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("me status = %d, body %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["username"] != "alice" || body["email"] != "alice@x.com" || body["is_active"] != true {
			t.Errorf("unexpected profile: %v", body)
		}
	})

	t.Run("me rejects missing or invalid tokens", func(t *testing.T) {
		if w := doJSON(t, r, http.MethodGet, "/users/me", "", nil); w.Code != http.StatusUnauthorized {
			t.Errorf("missing token status = %d", w.Code)
		}
		if w := doJSON(t, r, http.MethodGet, "/users/me", "garbage", nil); w.Code != http.StatusUnauthorized {
			t.Errorf("invalid token status = %d", w.Code)
		}
	})

	t.Run("availability probes", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/check-username/alice", "", nil)
		if body := decodeBody(t, w); body["available"] != false {
			t.Errorf("alice should be taken: %v", body)
		}
		w = doJSON(t, r, http.MethodGet, "/users/check-username/carol", "", nil)
		if body := decodeBody(t, w); body["available"] != true {
			t.Errorf("carol should be available: %v", body)
		}
		w = doJSON(t, r, http.MethodGet, "/users/check-email/alice@x.com", "", nil)
		if body := decodeBody(t, w); body["available"] != false {
			t.Errorf("alice@x.com should be taken: %v", body)
		}
		w = doJSON(t, r, http.MethodGet, "/users/check-email/new@x.com", "", nil)
		if body := decodeBody(t, w); body["available"] != true {
			t.Errorf("new@x.com should be available: %v", body)
		}
	})
}

func TestAccessGateIndependentOfUserExistence(t *testing.T) {
	r, tokens := newTestRouter(t)

	// A token for a user that was never registered passes the gate (tokens
	// are stateless) but /users/me re-resolves the subject and 404s.
	token, err := tokens.Issue("ghost")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	w := doJSON(t, r, http.MethodGet, "/users/me", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("me with unknown subject status = %d, want 404", w.Code)
	}
}
