package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loja_front_end/internal/middleware"
	"loja_front_end/internal/models"
	"loja_front_end/internal/store"
)

// cartView : items + agrégats dérivés, jamais stockés
func cartView(cart *store.Cart) gin.H {
	return gin.H{
		"items": cart.Items(),
		"total": cart.Total(),
		"count": cart.ItemCount(),
	}
}

// 🟢 GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartView(middleware.Cart(c)))
}

// 🟢 POST /api/cart/add
func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		Product models.Product `json:"product"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	cart := middleware.Cart(c)
	cart.AddItem(input.Product)
	c.JSON(http.StatusOK, cartView(cart))
}

// 🟢 PUT /api/cart/:productId — quantité <= 0 vaut suppression
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	cart := middleware.Cart(c)
	cart.UpdateQuantity(c.Param("productId"), input.Quantity)
	c.JSON(http.StatusOK, cartView(cart))
}

// 🟢 DELETE /api/cart/:productId — no-op si le produit est absent
func (h *Handler) RemoveFromCart(c *gin.Context) {
	cart := middleware.Cart(c)
	cart.RemoveItem(c.Param("productId"))
	c.JSON(http.StatusOK, cartView(cart))
}

// 🟢 DELETE /api/cart
func (h *Handler) ClearCart(c *gin.Context) {
	cart := middleware.Cart(c)
	cart.Clear()
	c.JSON(http.StatusOK, cartView(cart))
}
