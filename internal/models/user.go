package models

// User : le flag IsAdmin est le seul signal d'autorisation côté client.
// On fait confiance à la réponse de login de l'API externe.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthResponse est la réponse de POST /users/login de l'API externe
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
