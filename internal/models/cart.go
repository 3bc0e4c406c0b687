package models

// CartItem : au plus un item par produit, la quantité est toujours >= 1.
// La quantité ne se modifie que via le store du panier, jamais directement.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
