package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"loja_front_end/internal/models"
)

// ErrUnreachable : échec transport (requête jamais arrivée ou réponse
// indéchiffrable). Affiché comme avis générique, jamais retenté.
var ErrUnreachable = errors.New("serveur injoignable")

// APIError : échec métier rapporté par le serveur (non-2xx). Le champ
// `message` de la réponse, s'il existe, est repris tel quel.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("erreur HTTP %d", e.Status)
}

// Client parle à l'API catalogue/utilisateurs externe. Toute la
// persistance durable vit là-bas ; ce client ne garde rien.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// ProductInput : payload de création produit (POST /product)
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock,omitempty"`
}

// ProductUpdate : mise à jour partielle (PUT /product/{id}),
// seuls les champs non nil sont envoyés
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/product", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct : appel admin, le token bearer est obligatoire
func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) (models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/product", token, in, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in ProductUpdate) (models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, "/product/"+id, token, in, &updated); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/product/"+id, token, nil, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/users/login", "", payload, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	payload := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/users/signup", "", payload, nil)
}

// do exécute l'appel et range les échecs dans la taxonomie : transport
// → ErrUnreachable, non-2xx → APIError avec le message du serveur.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body *bytes.Buffer
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Le corps porte parfois un champ `message` repris tel quel
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		msg := payload.Message
		if msg == "" {
			msg = payload.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return nil
}
