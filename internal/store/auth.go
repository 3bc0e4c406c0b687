package store

import (
	"context"

	"loja_front_end/internal/models"
	"loja_front_end/internal/storage"
)

const authNamespace = "auth-storage:"

type session struct {
	Token           string       `json:"token"`
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// Auth détient la session du visiteur et garantit l'isolation du panier
// entre identités : tout login ou logout vide le panier AVANT de toucher
// à la session, pour qu'aucun observateur ne voie une nouvelle session
// associée à un panier périmé.
type Auth struct {
	sess      session
	loading   bool
	st        storage.Store
	visitorID string
	cart      *Cart
}

// NewAuth réhydrate la session persistée. Le flag loading reste vrai
// pendant la réhydratation puis passe à faux, comme le ferait un client
// qui diffère ses redirections d'autorisation tant que l'état n'est pas
// connu.
func NewAuth(st storage.Store, visitorID string, cart *Cart) *Auth {
	a := &Auth{
		loading:   true,
		st:        st,
		visitorID: visitorID,
		cart:      cart,
	}
	var persisted session
	if ok, _ := st.GetJSON(context.Background(), authNamespace+visitorID, &persisted); ok {
		a.sess = persisted
	}
	a.SetLoading(false)
	return a
}

// Login vide d'abord le panier, puis enregistre la session
func (a *Auth) Login(token string, user models.User) {
	a.cart.Clear()
	a.sess = session{Token: token, User: &user, IsAuthenticated: true}
	a.persist()
}

// Logout vide le panier puis remet la session à zéro
func (a *Auth) Logout() {
	a.cart.Clear()
	a.sess = session{}
	a.persist()
}

func (a *Auth) SetLoading(loading bool) {
	a.loading = loading
}

func (a *Auth) Loading() bool {
	return a.loading
}

func (a *Auth) IsAuthenticated() bool {
	return a.sess.IsAuthenticated
}

func (a *Auth) Token() string {
	return a.sess.Token
}

// User retourne nil quand personne n'est connecté
func (a *Auth) User() *models.User {
	return a.sess.User
}

// IsAdmin : le client fait confiance au flag renvoyé par le login ;
// l'API externe reste l'autorité sur chaque appel mutant.
func (a *Auth) IsAdmin() bool {
	return a.sess.User != nil && a.sess.User.IsAdmin
}

func (a *Auth) persist() {
	_ = a.st.SetJSON(context.Background(), authNamespace+a.visitorID, a.sess)
}

// AuthKey retourne la clé de persistance de la session d'un visiteur
func AuthKey(visitorID string) string {
	return authNamespace + visitorID
}
