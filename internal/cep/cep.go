package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrInvalidCEP : le code doit faire exactement 8 chiffres
	ErrInvalidCEP = errors.New("le CEP doit contenir 8 chiffres")
	// ErrNotFound : CEP bien formé mais inconnu du service
	ErrNotFound = errors.New("CEP introuvable")
	// ErrLookupFailed : échec réseau ou réponse indéchiffrable
	ErrLookupFailed = errors.New("erreur lors de la recherche du CEP")
)

var cepPattern = regexp.MustCompile(`^\d{8}$`)

// Address : fragment d'adresse renvoyé par ViaCEP, utilisé uniquement
// pour préremplir le champ adresse de livraison
type Address struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Formatted : "logradouro, bairro, localidade - uf"
func (a Address) Formatted() string {
	return fmt.Sprintf("%s, %s, %s - %s", a.Logradouro, a.Bairro, a.Localidade, a.UF)
}

// Client interroge le service ViaCEP (GET /ws/{cep}/json/)
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Lookup(ctx context.Context, cep string) (Address, error) {
	if !cepPattern.MatchString(cep) {
		return Address{}, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Address{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("%w: HTTP %d", ErrLookupFailed, resp.StatusCode)
	}

	var addr Address
	if err := json.NewDecoder(resp.Body).Decode(&addr); err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	// ViaCEP répond 200 avec {"erro": true} pour un CEP inconnu
	if addr.Erro {
		return Address{}, ErrNotFound
	}
	return addr, nil
}
