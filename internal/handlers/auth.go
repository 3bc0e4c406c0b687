package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loja_front_end/internal/api"
	"loja_front_end/internal/forms"
	"loja_front_end/internal/middleware"
	"loja_front_end/internal/utils"
)

// ================== AUTH ==================
// L'authentification est entièrement déléguée à l'API externe : le
// client transmet les identifiants tels quels et fait confiance à la
// réponse (token + profil, flag admin compris).

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	resp, err := h.API.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			middleware.RecordLoginFailure(h.Redis, form.Email)
		}
		respondAPIError(c, err)
		return
	}

	middleware.ClearLoginAttempts(h.Redis, form.Email)

	// Le panier est vidé avant que la nouvelle session soit visible
	middleware.Auth(c).Login(resp.AccessToken, resp.User)

	c.JSON(http.StatusOK, gin.H{
		"token": resp.AccessToken,
		"user":  resp.User,
	})
}

// POST /api/auth/signup
func (h *Handler) Signup(c *gin.Context) {
	var form forms.SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	if err := h.API.Signup(c.Request.Context(), form.Name, form.Email, form.Password); err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Compte créé, vous pouvez vous connecter"})
}

// POST /api/auth/logout — vide aussi le panier
func (h *Handler) Logout(c *gin.Context) {
	middleware.Auth(c).Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// GET /api/auth/me — état de session pour les vues, avec le flag
// loading qui diffère les redirections tant que la réhydratation
// n'est pas terminée
func (h *Handler) Me(c *gin.Context) {
	auth := middleware.Auth(c)

	resp := gin.H{
		"isAuthenticated": auth.IsAuthenticated(),
		"loading":         auth.Loading(),
		"user":            auth.User(),
	}
	if exp, ok := utils.TokenExpiry(auth.Token()); ok {
		resp["tokenExpiresAt"] = exp
	}
	c.JSON(http.StatusOK, resp)
}
