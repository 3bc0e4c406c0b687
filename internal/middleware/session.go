package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"loja_front_end/internal/storage"
	"loja_front_end/internal/store"
)

const (
	sessionName = "loja_session"

	ctxVisitorID = "visitor_id"
	ctxCart      = "cart_store"
	ctxAuth      = "auth_store"
)

// NewCookieStore configure le cookie qui porte l'identifiant visiteur
func NewCookieStore(secret string) *sessions.CookieStore {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.MaxAge(86400 * 30)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return cs
}

// VisitorSession attache un identifiant visiteur au cookie puis
// réhydrate les deux stores (panier, session) pour la requête. Les
// stores sont des instances par requête injectées via le context Gin,
// pas des singletons.
func VisitorSession(cookies *sessions.CookieStore, st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := cookies.Get(c.Request, sessionName)

		visitorID, ok := sess.Values[ctxVisitorID].(string)
		if !ok || visitorID == "" {
			visitorID = uuid.NewString()
			sess.Values[ctxVisitorID] = visitorID
			_ = sess.Save(c.Request, c.Writer)
		}

		cart := store.NewCart(st, visitorID)
		auth := store.NewAuth(st, visitorID, cart)

		c.Set(ctxVisitorID, visitorID)
		c.Set(ctxCart, cart)
		c.Set(ctxAuth, auth)

		c.Next()
	}
}

// VisitorID retourne l'identifiant du visiteur courant
func VisitorID(c *gin.Context) string {
	return c.GetString(ctxVisitorID)
}

// Cart retourne le store du panier réhydraté pour la requête
func Cart(c *gin.Context) *store.Cart {
	return c.MustGet(ctxCart).(*store.Cart)
}

// Auth retourne le store de session réhydraté pour la requête
func Auth(c *gin.Context) *store.Auth {
	return c.MustGet(ctxAuth).(*store.Auth)
}
