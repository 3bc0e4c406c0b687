package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja_front_end/internal/models"
)

func TestListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/product", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Product{
			{ID: "p1", Name: "Caneca", Price: 29.9},
			{ID: "p2", Name: "Camiseta", Price: 59.9},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Caneca", products[0].Name)
	assert.InDelta(t, 29.9, products[0].Price, 1e-9)
}

func TestCreateProductSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-admin", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in ProductInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.InDelta(t, 29.99, in.Price, 1e-9)
		assert.Equal(t, 10, in.Stock)

		json.NewEncoder(w).Encode(models.Product{ID: "p9", Name: in.Name, Price: in.Price, Stock: in.Stock})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	created, err := client.CreateProduct(context.Background(), "tok-admin", ProductInput{
		Name:  "Caneca",
		Price: 29.99,
		Stock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "p9", created.ID)
	assert.InDelta(t, 29.99, created.Price, 1e-9)
	assert.Equal(t, 10, created.Stock)
}

func TestServerMessageSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Um produto com esse nome já existe"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.CreateProduct(context.Background(), "tok", ProductInput{Name: "X"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Um produto com esse nome já existe", apiErr.Error())
}

func TestErrorFieldFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email ou mot de passe incorrect"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "a@b.co", "pw")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email ou mot de passe incorrect", apiErr.Error())
}

func TestStatusOnlyErrorHasGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.DeleteProduct(context.Background(), "tok", "p1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "erreur HTTP 500", apiErr.Error())
}

func TestTransportFailureIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // serveur déjà fermé : échec transport

	client := NewClient(srv.URL)
	_, err := client.ListProducts(context.Background())
	assert.True(t, errors.Is(err, ErrUnreachable))
}

func TestUnparseableBodyIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>pas du json</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListProducts(context.Background())
	assert.True(t, errors.Is(err, ErrUnreachable))
}

func TestLoginDecodesAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ana@loja.br", creds["email"])

		json.NewEncoder(w).Encode(models.AuthResponse{
			AccessToken: "tok-abc",
			User:        models.User{ID: "u1", Name: "Ana", IsAdmin: true},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Login(context.Background(), "ana@loja.br", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.AccessToken)
	assert.True(t, resp.User.IsAdmin)
}

func TestUpdateProductSendsOnlyProvidedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/product/p1", r.URL.Path)

		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Contains(t, raw, "price")
		assert.NotContains(t, raw, "name")
		assert.NotContains(t, raw, "description")

		json.NewEncoder(w).Encode(models.Product{ID: "p1", Price: 19.9})
	}))
	defer srv.Close()

	price := 19.9
	client := NewClient(srv.URL)
	updated, err := client.UpdateProduct(context.Background(), "tok", "p1", ProductUpdate{Price: &price})
	require.NoError(t, err)
	assert.InDelta(t, 19.9, updated.Price, 1e-9)
}
