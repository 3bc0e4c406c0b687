package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja_front_end/internal/api"
	"loja_front_end/internal/cep"
	"loja_front_end/internal/handlers"
	"loja_front_end/internal/middleware"
	"loja_front_end/internal/models"
	"loja_front_end/internal/routes"
	"loja_front_end/internal/storage"
)

// testEnv monte le serveur complet (middleware de session compris) sur
// un backend mémoire, avec un client HTTP qui conserve le cookie
// visiteur entre les requêtes — l'équivalent d'un onglet de navigateur.
type testEnv struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
	st     *storage.MemoryStore
}

func newTestEnv(t *testing.T, upstream http.Handler) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstreamSrv := httptest.NewServer(upstream)
	t.Cleanup(upstreamSrv.Close)

	apiClient := api.NewClient(upstreamSrv.URL)
	catalog := api.NewCatalogCache(apiClient, nil)
	cepClient := cep.NewClient(upstreamSrv.URL)

	st := storage.NewMemoryStore()
	cookies := middleware.NewCookieStore("secret-de-test")

	h := handlers.New(apiClient, catalog, cepClient, nil)

	r := gin.New()
	routes.RegisterRoutes(r, h, cookies, st, nil)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{
		t:      t,
		server: server,
		client: &http.Client{Jar: jar},
		st:     st,
	}
}

func (e *testEnv) do(method, path string, body any) (*http.Response, map[string]json.RawMessage) {
	e.t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(e.t, err)
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.server.URL+path, buf)
	require.NoError(e.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.client.Do(req)
	require.NoError(e.t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	resp.Body.Close()

	decoded := map[string]json.RawMessage{}
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded
}

func (e *testEnv) cartView() (items []models.CartItem, total float64, count int) {
	e.t.Helper()
	resp, body := e.do(http.MethodGet, "/api/cart", nil)
	require.Equal(e.t, http.StatusOK, resp.StatusCode)
	require.NoError(e.t, json.Unmarshal(body["items"], &items))
	require.NoError(e.t, json.Unmarshal(body["total"], &total))
	require.NoError(e.t, json.Unmarshal(body["count"], &count))
	return items, total, count
}

func caneca() models.Product {
	return models.Product{ID: "p1", Name: "Caneca", Price: 10}
}

func camiseta() models.Product {
	return models.Product{ID: "p2", Name: "Camiseta", Price: 5}
}

func TestCartFlowAcrossRequests(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())

	// Deux ajouts du même produit → un seul item, quantité 2
	env.do(http.MethodPost, "/api/cart/add", gin.H{"product": caneca()})
	env.do(http.MethodPost, "/api/cart/add", gin.H{"product": caneca()})
	env.do(http.MethodPost, "/api/cart/add", gin.H{"product": camiseta()})

	items, total, count := env.cartView()
	require.Len(t, items, 2)
	assert.InDelta(t, 25.0, total, 1e-9)
	assert.Equal(t, 3, count)

	// Quantité 0 → suppression
	env.do(http.MethodPut, "/api/cart/p2", gin.H{"quantity": 0})
	items, _, count = env.cartView()
	require.Len(t, items, 1)
	assert.Equal(t, 2, count)

	// Suppression d'un produit absent : pas d'erreur, panier inchangé
	resp, _ := env.do(http.MethodDelete, "/api/cart/inexistant", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	items, _, _ = env.cartView()
	assert.Len(t, items, 1)

	env.do(http.MethodDelete, "/api/cart", nil)
	items, _, count = env.cartView()
	assert.Empty(t, items)
	assert.Equal(t, 0, count)
}

func TestCartRejectsProductWithoutID(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())

	resp, _ := env.do(http.MethodPost, "/api/cart/add", gin.H{"product": gin.H{"name": "sans id"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())

	resp, _ := env.do(http.MethodGet, "/api/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = env.do(http.MethodPost, "/api/checkout", gin.H{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutValidationErrorsPerField(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())
	env.do(http.MethodPost, "/api/cart/add", gin.H{"product": caneca()})

	resp, body := env.do(http.MethodPost, "/api/checkout", gin.H{
		"nome":  "Ana",
		"email": "pas-un-email",
		"cep":   "123",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errs map[string]string
	require.NoError(t, json.Unmarshal(body["errors"], &errs))
	assert.Equal(t, "Email invalide", errs["email"])
	assert.Equal(t, "Le CEP doit contenir 8 chiffres", errs["cep"])
	assert.Contains(t, errs, "numero")
	assert.Contains(t, errs, "endereco")
	assert.NotContains(t, errs, "nome")

	// Le panier n'a pas bougé
	_, _, count := env.cartView()
	assert.Equal(t, 1, count)
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())
	env.do(http.MethodPost, "/api/cart/add", gin.H{"product": caneca()})
	env.do(http.MethodPost, "/api/cart/add", gin.H{"product": caneca()})

	resp, body := env.do(http.MethodPost, "/api/checkout", gin.H{
		"nome":     "Ana Silva",
		"email":    "ana@loja.br",
		"cep":      "01310100",
		"numero":   "42",
		"endereco": "Avenida Paulista, Bela Vista, São Paulo - SP",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var order models.Order
	require.NoError(t, json.Unmarshal(body["order"], &order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "pending", order.Status)
	assert.InDelta(t, 20.0, order.Total, 1e-9)

	_, _, count := env.cartView()
	assert.Equal(t, 0, count)
}

func TestCEPLookupEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/01310100/json/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	})
	mux.HandleFunc("/ws/99999999/json/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	})
	env := newTestEnv(t, mux)

	resp, body := env.do(http.MethodGet, "/api/cep/01310100", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var endereco string
	require.NoError(t, json.Unmarshal(body["endereco"], &endereco))
	assert.Equal(t, "Avenida Paulista, Bela Vista, São Paulo - SP", endereco)

	resp, _ = env.do(http.MethodGet, "/api/cep/99999999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = env.do(http.MethodGet, "/api/cep/123", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
