package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrovs/useradm/internal/client/models"
)

// capture records the last request seen by the test server.
type capture struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

func newServer(t *testing.T, status int, response string, rec *capture) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Header = r.Header.Clone()
		rec.Body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_Success_ReturnsToken(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusOK, `{"access_token":"abc"}`, &rec)
	c := NewHTTPClient(srv.URL)

	token, err := c.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/v1/auth/login", rec.Path)
	assert.Equal(t, "application/json", rec.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", rec.Header.Get("Accept"))
	assert.NotEmpty(t, rec.Header.Get("X-Request-Id"))
	assert.Empty(t, rec.Header.Get("Authorization"))

	var sent map[string]string
	require.NoError(t, json.Unmarshal(rec.Body, &sent))
	assert.Equal(t, "admin@example.com", sent["email"])
	assert.Equal(t, "secret", sent["password"])
}

func TestLogin_SuccessWithoutToken_Fails(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusOK, `{}`, &rec)
	c := NewHTTPClient(srv.URL)

	_, err := c.Login(context.Background(), "u@example.com", "pw")
	require.ErrorIs(t, err, ErrMissingAccessToken)
}

func TestLogin_Non2xx_ReturnsRequestError(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusUnauthorized, `{"message":"invalid credentials"}`, &rec)
	c := NewHTTPClient(srv.URL)

	_, err := c.Login(context.Background(), "u@example.com", "pw")
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Equal(t, "invalid credentials", reqErr.Message)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_TransportFailure_WrapsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	c := NewHTTPClient(srv.URL)

	_, err := c.Login(context.Background(), "u@example.com", "pw")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestListUsers_SendsBearerTokenAndDecodes(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusOK,
		`{"users":[{"_id":"1","email":"john@example.com","firstName":"John","lastName":"Doe","roles":["admin"]}],"total":1}`,
		&rec)
	c := NewHTTPClient(srv.URL)

	users, err := c.ListUsers(context.Background(), "mock-token")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/v1/user", rec.Path)
	assert.Equal(t, "Bearer mock-token", rec.Header.Get("Authorization"))

	require.Len(t, users, 1)
	assert.Equal(t, models.User{
		ID:        "1",
		Email:     "john@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Roles:     []string{"admin"},
	}, users[0])
}

func TestListUsers_EmptyToken_OmitsAuthorizationHeader(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusOK, `{"users":[]}`, &rec)
	c := NewHTTPClient(srv.URL)

	_, err := c.ListUsers(context.Background(), "")
	require.NoError(t, err)
	_, present := rec.Header["Authorization"]
	assert.False(t, present)
}

func TestCreateUser_PostsCollectionEndpoint(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusCreated,
		`{"user":{"_id":"9","email":"new@example.com","firstName":"New","lastName":"User","roles":["viewer"]}}`,
		&rec)
	c := NewHTTPClient(srv.URL)

	created, err := c.CreateUser(context.Background(), "tok", models.UserFields{
		Email: "new@example.com", FirstName: "New", LastName: "User", Password: "pw", Roles: []string{"viewer"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/v1/user", rec.Path)
	assert.Equal(t, "Bearer tok", rec.Header.Get("Authorization"))
	assert.Equal(t, "9", created.ID)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.Body, &sent))
	assert.Equal(t, "new@example.com", sent["email"])
	assert.Equal(t, "pw", sent["password"])
}

func TestUpdateUser_PutsSuffixedEndpoint(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusOK,
		`{"user":{"_id":"42","email":"u@example.com","firstName":"U","lastName":"V","roles":["admin"]}}`,
		&rec)
	c := NewHTTPClient(srv.URL)

	updated, err := c.UpdateUser(context.Background(), "tok", "42", models.UserFields{Email: "u@example.com"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/api/v1/user/42", rec.Path)
	assert.Equal(t, "Bearer tok", rec.Header.Get("Authorization"))
	assert.Equal(t, "42", updated.ID)
}

func TestDeleteUser_DeletesSuffixedEndpoint(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusOK, ``, &rec)
	c := NewHTTPClient(srv.URL)

	require.NoError(t, c.DeleteUser(context.Background(), "tok", "42"))

	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/api/v1/user/42", rec.Path)
	assert.Equal(t, "Bearer tok", rec.Header.Get("Authorization"))
}

func TestDo_ServerError_UnwrapsToUnavailable(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusServiceUnavailable, ``, &rec)
	c := NewHTTPClient(srv.URL)

	_, err := c.ListUsers(context.Background(), "tok")
	require.ErrorIs(t, err, ErrUnavailable)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), reqErr.Message)
}

func TestDo_PlainStatus_NoSentinel(t *testing.T) {
	var rec capture
	srv := newServer(t, http.StatusConflict, `{"message":"email taken"}`, &rec)
	c := NewHTTPClient(srv.URL)

	_, err := c.CreateUser(context.Background(), "tok", models.UserFields{Email: "dup@example.com"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(err, ErrUnavailable))

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "email taken", reqErr.Message)
}

func TestClose_ReleasesTransport(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1")
	require.NoError(t, c.Close())
}
