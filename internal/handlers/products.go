package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"loja_front_end/internal/models"
)

// GET /api/products?search=
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		respondAPIError(c, err)
		return
	}

	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	if search != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), search) ||
				strings.Contains(strings.ToLower(p.Description), search) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	products, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		respondAPIError(c, err)
		return
	}
	for _, p := range products {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Produit introuvable"})
}
