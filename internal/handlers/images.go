package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loja_front_end/internal/services"
)

// POST /api/admin/images — upload multipart d'une image produit,
// retourne l'URL publique à mettre dans le champ image du formulaire
func (h *Handler) UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier image manquant"})
		return
	}

	url, err := services.UploadProductImage(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload impossible : " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
