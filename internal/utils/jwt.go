package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry décode le jeton d'accès de l'API externe SANS vérifier la
// signature — le client fait confiance à ce que le login lui a remis,
// l'autorisation réelle reste côté serveur. Sert uniquement à exposer
// l'échéance de session dans /api/auth/me.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
