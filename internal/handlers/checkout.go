package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loja_front_end/internal/cep"
	"loja_front_end/internal/forms"
	"loja_front_end/internal/middleware"
	"loja_front_end/internal/models"
)

// GET /api/checkout — résumé de commande
func (h *Handler) CheckoutSummary(c *gin.Context) {
	cart := middleware.Cart(c)
	if cart.ItemCount() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Votre panier est vide"})
		return
	}
	c.JSON(http.StatusOK, cartView(cart))
}

// POST /api/checkout — valide le formulaire de livraison puis finalise.
// Les erreurs de validation sont renvoyées par champ, avant tout appel
// réseau.
func (h *Handler) SubmitCheckout(c *gin.Context) {
	cart := middleware.Cart(c)
	if cart.ItemCount() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Votre panier est vide"})
		return
	}

	var form forms.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	order := models.Order{
		ID:        uuid.NewString(),
		Items:     cart.Items(),
		Total:     cart.Total(),
		Status:    "pending",
		Nome:      form.Nome,
		Email:     form.Email,
		Endereco:  form.Endereco + ", " + form.Numero,
		CreatedAt: time.Now(),
	}

	// Commande reçue : le panier repart vide
	cart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Merci pour votre achat, " + form.Nome + " ! Votre commande a bien été reçue.",
		"order":   order,
	})
}

// GET /api/cep/:cep — préremplissage de l'adresse de livraison
func (h *Handler) LookupCEP(c *gin.Context) {
	addr, err := h.CEP.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case errors.Is(err, cep.ErrInvalidCEP):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Le CEP doit contenir 8 chiffres"})
		case errors.Is(err, cep.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "CEP introuvable"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"message": "Erreur lors de la recherche du CEP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logradouro": addr.Logradouro,
		"bairro":     addr.Bairro,
		"localidade": addr.Localidade,
		"uf":         addr.UF,
		"endereco":   addr.Formatted(),
	})
}
