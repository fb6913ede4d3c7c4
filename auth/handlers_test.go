package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(store UserStore) http.Handler {
	issuer := NewTokenIssuer("test-secret")
	handlers := NewHandlers(NewAuthService(store, issuer, 30*time.Minute))

	r := chi.NewRouter()
	r.Post("/users/register", handlers.HandleRegister())
	r.Post("/users/confirm/{token}", handlers.HandleConfirm())
	r.Post("/users/auth", handlers.HandleAuthenticate())
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestAccountFlow drives the register/confirm/authenticate sequence through
// the HTTP surface alone, with no side channel: the confirmation token comes
// out of the registration response and straight back into the confirm call.
func TestAccountFlow(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	router := newTestRouter(store)

	rec := doJSON(t, router, http.MethodPost, "/users/register", RegisterRequest{
		Username:        "alice",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("secret1")) ||
		bytes.Contains(rec.Body.Bytes(), []byte("hashed_password")) {
		t.Fatal("register response must not expose password material")
	}

	var created RegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding register response: %v", err)
	}
	if created.ConfirmationToken == "" {
		t.Fatal("register response must carry the confirmation token; nothing else delivers it")
	}
	if created.Confirmed {
		t.Fatal("new accounts must start unconfirmed")
	}

	rec = doJSON(t, router, http.MethodPost, "/users/auth", AuthenticateRequest{Username: "alice", Password: "secret1"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("pre-confirmation auth status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	rec = doJSON(t, router, http.MethodPost, "/users/confirm/"+created.ConfirmationToken, nil)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("confirm status = %d, want %d; body: %s", rec.Code, http.StatusAccepted, rec.Body)
	}

	rec = doJSON(t, router, http.MethodPost, "/users/confirm/"+created.ConfirmationToken, nil)
	if rec.Code != http.StatusAlreadyReported {
		t.Fatalf("repeat confirm status = %d, want %d", rec.Code, http.StatusAlreadyReported)
	}

	rec = doJSON(t, router, http.MethodPost, "/users/auth", AuthenticateRequest{Username: "alice", Password: "secret1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("auth status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body)
	}
	var token TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &token); err != nil {
		t.Fatalf("decoding token response: %v", err)
	}
	if token.TokenType != "bearer" || token.AccessToken == "" {
		t.Fatalf("unexpected token response: %+v", token)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	t.Parallel()

	router := newTestRouter(newFakeUserStore())

	cases := []struct {
		name string
		req  RegisterRequest
		want int
	}{
		{name: "empty username", req: RegisterRequest{Password: "a", ConfirmPassword: "a"}, want: http.StatusBadRequest},
		{name: "empty password", req: RegisterRequest{Username: "alice", ConfirmPassword: "a"}, want: http.StatusBadRequest},
		{name: "mismatched passwords", req: RegisterRequest{Username: "alice", Password: "a", ConfirmPassword: "b"}, want: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/users/register", tc.req)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tc.want, rec.Body)
			}
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	router := newTestRouter(newFakeUserStore())
	req := RegisterRequest{Username: "alice", Password: "secret1", ConfirmPassword: "secret1"}

	if rec := doJSON(t, router, http.MethodPost, "/users/register", req); rec.Code != http.StatusCreated {
		t.Fatalf("first register status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec := doJSON(t, router, http.MethodPost, "/users/register", req); rec.Code != http.StatusConflict {
		t.Fatalf("second register status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestConfirm_UnknownTokenHTTP(t *testing.T) {
	t.Parallel()

	router := newTestRouter(newFakeUserStore())

	rec := doJSON(t, router, http.MethodPost, "/users/confirm/does-not-exist", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
