package models

import "time"

// Order est la confirmation rendue au client à la fin du checkout.
// Aucune persistance côté serveur : la commande part telle quelle
// dans la réponse.
type Order struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
	Nome      string     `json:"nome"`
	Email     string     `json:"email"`
	Endereco  string     `json:"endereco"`
	CreatedAt time.Time  `json:"createdAt"`
}
