package models

// Product est une copie lecture seule du catalogue externe.
// Seul le flux admin envoie des mutations, et la liste locale est
// réconciliée depuis la réponse du serveur.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}
