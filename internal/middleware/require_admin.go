package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth vérifie qu'une session authentifiée est réhydratée.
// Tant que la réhydratation n'est pas terminée, aucune décision
// d'autorisation n'est prise.
func RequireAuth(c *gin.Context) {
	auth := Auth(c)
	if auth.Loading() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session en cours de chargement"})
		c.Abort()
		return
	}
	if !auth.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdmin vérifie que l'utilisateur porte le flag admin renvoyé
// par le login. L'API externe reste l'autorité : chaque appel mutant
// est re-vérifié côté serveur avec le token bearer.
func RequireAdmin(c *gin.Context) {
	auth := Auth(c)
	if auth.Loading() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session en cours de chargement"})
		c.Abort()
		return
	}
	if !auth.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		c.Abort()
		return
	}
	if !auth.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
		c.Abort()
		return
	}
	c.Next()
}
