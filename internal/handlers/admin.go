package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"loja_front_end/internal/api"
	"loja_front_end/internal/forms"
	"loja_front_end/internal/middleware"
)

// ================== ADMIN PRODUITS ==================
// Le BFF ne fait que valider puis relayer : chaque mutation part vers
// l'API externe avec le token bearer de la session, et la liste locale
// est réconciliée depuis la réponse du serveur — jamais depuis l'entrée.

// GET /api/admin/products — liste fraîche pour la console admin
func (h *Handler) AdminListProducts(c *gin.Context) {
	products, err := h.Catalog.Refresh(c.Request.Context())
	if err != nil {
		respondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// POST /api/admin/products
func (h *Handler) CreateProduct(c *gin.Context) {
	var form forms.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	input, errs := form.Parse()
	if !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	created, err := h.API.CreateProduct(c.Request.Context(), middleware.Auth(c).Token(), input)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	h.Catalog.UpsertLocal(c.Request.Context(), created)
	c.JSON(http.StatusCreated, created)
}

// PUT /api/admin/products/:id — mise à jour partielle : seuls les
// champs renseignés partent vers le serveur
func (h *Handler) UpdateProduct(c *gin.Context) {
	var form forms.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	update, errs := partialUpdate(form)
	if !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	updated, err := h.API.UpdateProduct(c.Request.Context(), middleware.Auth(c).Token(), c.Param("id"), update)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	h.Catalog.UpsertLocal(c.Request.Context(), updated)
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/admin/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.API.DeleteProduct(c.Request.Context(), middleware.Auth(c).Token(), id); err != nil {
		respondAPIError(c, err)
		return
	}

	h.Catalog.RemoveLocal(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}

// partialUpdate construit la mise à jour à partir des seuls champs
// fournis, avec la même conversion stricte des nombres que la création
func partialUpdate(form forms.ProductForm) (api.ProductUpdate, forms.FieldErrors) {
	var update api.ProductUpdate
	errs := forms.FieldErrors{}

	if name := strings.TrimSpace(form.Name); name != "" {
		update.Name = &name
	}
	if desc := strings.TrimSpace(form.Description); desc != "" {
		update.Description = &desc
	}
	if image := strings.TrimSpace(form.Image); image != "" {
		update.Image = &image
	}
	if s := strings.TrimSpace(form.Price); s != "" {
		price, err := strconv.ParseFloat(s, 64)
		switch {
		// ParseFloat accepte "NaN" et "Inf" : jamais de prix non fini
		case err != nil, math.IsNaN(price), math.IsInf(price, 0):
			errs["price"] = "Le prix doit être un nombre"
		case price < 0:
			errs["price"] = "Le prix ne peut pas être négatif"
		default:
			update.Price = &price
		}
	}
	if s := strings.TrimSpace(form.Stock); s != "" {
		stock, err := strconv.Atoi(s)
		switch {
		case err != nil:
			errs["stock"] = "Le stock doit être un nombre entier"
		case stock < 0:
			errs["stock"] = "Le stock ne peut pas être négatif"
		default:
			update.Stock = &stock
		}
	}
	return update, errs
}
