// Package handlers est la couche de présentation : elle collecte les
// entrées, interroge les deux stores et l'API externe, et convertit
// chaque échec en avis lisible — rien ne remonte plus loin, rien n'est
// retenté.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"loja_front_end/internal/api"
	"loja_front_end/internal/cep"
)

type Handler struct {
	API     *api.Client
	Catalog *api.CatalogCache
	CEP     *cep.Client
	Redis   *redis.Client // nil dans les tests
}

func New(client *api.Client, catalog *api.CatalogCache, cepClient *cep.Client, rdb *redis.Client) *Handler {
	return &Handler{
		API:     client,
		Catalog: catalog,
		CEP:     cepClient,
		Redis:   rdb,
	}
}

// respondAPIError range l'échec dans la taxonomie : message serveur
// repris tel quel avec son statut, ou avis générique quand le serveur
// est injoignable
func respondAPIError(c *gin.Context, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Error()})
		return
	}
	if errors.Is(err, api.ErrUnreachable) {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Impossible de joindre le serveur"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Erreur interne"})
}
