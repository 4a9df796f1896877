package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/cmaina/shoplist-api/internal/api/middleware"
	"github.com/cmaina/shoplist-api/internal/api/shared"
	"github.com/cmaina/shoplist-api/internal/service/auth"
)

// stubTokenService issues recognizable tokens without real signing so
// tests can mint credentials directly.
type stubTokenService struct{}

func (stubTokenService) GenerateToken(_ context.Context, userID int64) (string, error) {
	return fmt.Sprintf("access-%d", userID), nil
}

func (stubTokenService) ValidateToken(_ context.Context, tokenString string) (int64, error) {
	raw, ok := strings.CutPrefix(tokenString, "access-")
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	return id, nil
}

func (stubTokenService) GenerateResetToken(_ context.Context, email string) (string, error) {
	return "reset-" + email, nil
}

func (stubTokenService) ValidateResetToken(_ context.Context, tokenString string) (string, error) {
	email, ok := strings.CutPrefix(tokenString, "reset-")
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return email, nil
}

// testEnv wires the handlers onto a router backed by in-memory fakes,
// mirroring the production route tree.
type testEnv struct {
	router chi.Router
	users  *fakeUserStore
	lists  *fakeListStore
	items  *fakeItemStore
	hasher *auth.BcryptHasher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newFakeUserStore()
	items := newFakeItemStore()
	lists := newFakeListStore(items)
	tokens := stubTokenService{}
	hasher := auth.NewBcryptHasher()

	authHandler := NewAuthHandler(users, tokens, hasher, hasher)
	userHandler := NewUserHandler(users, tokens, hasher)
	listHandler := NewListHandler(lists)
	itemHandler := NewItemHandler(lists, items)
	authMw := middleware.NewAuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Use(chimiddleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "The requested resource is not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed for the requested URL")
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/register", authHandler.RegisterInfo)
		r.Post("/register", authHandler.Register)
		r.Get("/login", authHandler.LoginInfo)
		r.Post("/login", authHandler.Login)
	})

	r.Post("/user/reset", userHandler.RequestReset)
	r.Put("/user/reset/password/{token}", userHandler.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(authMw.Authenticate)

		r.Get("/user", userHandler.Profile)
		r.Put("/user", userHandler.UpdateProfile)

		r.Route("/shoppinglists", func(r chi.Router) {
			r.Get("/", listHandler.Index)
			r.Post("/", listHandler.Create)

			r.Route("/{listID}", func(r chi.Router) {
				r.Get("/", listHandler.Get)
				r.Put("/", listHandler.Update)
				r.Delete("/", listHandler.Delete)

				r.Route("/items", func(r chi.Router) {
					r.Get("/", itemHandler.Index)
					r.Post("/", itemHandler.Create)

					r.Route("/{itemID}", func(r chi.Router) {
						r.Get("/", itemHandler.Get)
						r.Put("/", itemHandler.Update)
						r.Delete("/", itemHandler.Delete)
					})
				})
			})
		})
	})

	return &testEnv{router: r, users: users, lists: lists, items: items, hasher: hasher}
}

// do performs a request against the test router. A non-empty token is
// sent as a bearer credential; a non-nil body is JSON encoded.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// registerUser creates a user through the registration endpoint and
// returns a valid access token for it.
func (e *testEnv) registerUser(t *testing.T, email, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/auth/register/", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = e.do(t, http.MethodPost, "/auth/login/", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// decodeBody unmarshals the recorded response body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// bodyMessage extracts the message field from a response body.
func bodyMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &envelope)
	return envelope.Message
}
