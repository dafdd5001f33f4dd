package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventaria/inventaria/pkg/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(Options{BaseURL: server.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"relative", "/api"},
		{"no host", "http://"},
		{"bad scheme", "ftp://example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(Options{BaseURL: tc.url})
			assert.Error(t, err)
		})
	}
}

func TestAPIError_DetailSurfaced(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "email already registered"})
	})

	_, err := c.Users().Create(context.Background(), map[string]any{"email": "dup@acme.com"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "email already registered", apiErr.Error())
}

func TestAPIError_FallbackMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Users().Get(context.Background(), 1)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), "502")
}

func TestUsersList_QueryParams(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(UserPage{
			Items: []domain.User{{ID: 1, Email: "ana@acme.com"}},
			Total: 1,
			Page:  2,
		})
	})

	active := true
	page, err := c.Users().List(context.Background(), domain.UserFilters{
		RoleID:    3,
		CountryID: 7,
		Active:    &active,
		Page:      2,
		PageSize:  50,
	})
	require.NoError(t, err)

	q := got.URL.Query()
	assert.Equal(t, "/users", got.URL.Path)
	assert.Equal(t, "3", q.Get("role_id"))
	assert.Equal(t, "7", q.Get("country_id"))
	assert.Equal(t, "true", q.Get("active"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "50", q.Get("page_size"))

	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Total)
}

func TestUsersUpdate_PayloadPassThrough(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.User{ID: 5, Email: "ana@acme.com"})
	})

	payload := map[string]any{
		"email":      "ana@acme.com",
		"first_name": "Ana",
	}
	user, err := c.Users().Update(context.Background(), 5, payload)
	require.NoError(t, err)

	assert.Equal(t, 5, user.ID)
	assert.Equal(t, "ana@acme.com", body["email"])
	// blank password was never added to the payload, so it must not be on the wire
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)
}

func TestUsersSearch_EscapesQuery(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.User{})
	})

	_, err := c.Users().Search(context.Background(), "ana maría")
	require.NoError(t, err)
	assert.Equal(t, "/users/search/ana%20mar%C3%ADa", gotPath)
}

func TestUsersReference_JoinsAllThree(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/reference/roles":
			json.NewEncoder(w).Encode([]domain.Role{{ID: 1, Name: "Administrator"}})
		case "/users/reference/countries":
			json.NewEncoder(w).Encode([]domain.Country{{ID: 1, Code: "GT"}})
		case "/users/reference/categories":
			json.NewEncoder(w).Encode([]domain.Category{{ID: 1, Name: "Bebidas"}})
		default:
			http.NotFound(w, r)
		}
	})

	roles, countries, categories, err := c.Users().Reference(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 1)
	assert.Len(t, countries, 1)
	assert.Len(t, categories, 1)
}

func TestUsersReference_FailsWhenAnyFetchFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/reference/categories" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	})

	_, _, _, err := c.Users().Reference(context.Background())
	assert.Error(t, err)
}

func TestCountriesToggleActive_Path(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Country{ID: 4, Code: "SV", Active: false})
	})

	country, err := c.Countries().ToggleActive(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/countries/4/toggle-active", gotPath)
	assert.False(t, country.Active)
}

func TestPurgeProducts_RequestShape(t *testing.T) {
	var (
		gotMethod string
		gotURL    string
		body      purgeRequest
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotURL = r.URL.String()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.PurgeResult{DeletedProducts: 42, DeletedMovements: 7})
	})

	result, err := c.Statistics().PurgeProducts(context.Background(), "GT", true, "s3cret")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/statistics/country/GT/products?include_movements=true", gotURL)
	assert.Equal(t, "s3cret", body.Password)
	assert.Equal(t, 42, result.DeletedProducts)
	assert.Equal(t, 7, result.DeletedMovements)
}

func TestMovementsTimeline_DaysParam(t *testing.T) {
	var gotDays string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotDays = r.URL.Query().Get("days")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.MovementPoint{})
	})

	_, err := c.Statistics().MovementsTimeline(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "7", gotDays)
}

func TestMutationsNotRetried(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.Users().Delete(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGetRetriedOnServerError(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.User{ID: 1})
	})

	user, err := c.Users().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, 2, calls)
}
