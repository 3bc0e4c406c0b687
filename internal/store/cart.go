package store

import (
	"context"
	"sort"

	"loja_front_end/internal/models"
	"loja_front_end/internal/storage"
)

const (
	cartNamespace = "cart-storage:"
	cartChannel   = "cart:"
)

// Cart détient l'état du panier du visiteur : au plus un item par produit,
// quantité toujours >= 1. Les agrégats (total, nombre d'articles) sont
// recalculés à la demande depuis la liste d'items, jamais stockés.
// Instance construite par requête et injectée — pas de singleton.
type Cart struct {
	items     map[string]models.CartItem
	st        storage.Store
	visitorID string
}

// NewCart réhydrate le panier persisté du visiteur. Un blob absent ou
// illisible donne un panier vide.
func NewCart(st storage.Store, visitorID string) *Cart {
	c := &Cart{
		items:     make(map[string]models.CartItem),
		st:        st,
		visitorID: visitorID,
	}
	var persisted []models.CartItem
	if ok, _ := st.GetJSON(context.Background(), cartNamespace+visitorID, &persisted); ok {
		for _, item := range persisted {
			if item.Quantity >= 1 && item.Product.ID != "" {
				c.items[item.Product.ID] = item
			}
		}
	}
	return c
}

// AddItem incrémente la quantité si le produit est déjà présent,
// sinon l'insère avec une quantité de 1. Ne peut pas échouer.
func (c *Cart) AddItem(p models.Product) {
	if item, ok := c.items[p.ID]; ok {
		item.Quantity++
		c.items[p.ID] = item
	} else {
		c.items[p.ID] = models.CartItem{Product: p, Quantity: 1}
	}
	c.persist("updated")
}

// RemoveItem supprime l'item s'il existe ; no-op sinon
func (c *Cart) RemoveItem(productID string) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	c.persist("updated")
}

// UpdateQuantity fixe la quantité d'un item. Une quantité <= 0 vaut
// suppression (le chemin qui rejette aussi les valeurs négatives).
// No-op si le produit n'est pas dans le panier.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	item, ok := c.items[productID]
	if !ok {
		return
	}
	item.Quantity = quantity
	c.items[productID] = item
	c.persist("updated")
}

// Clear vide le panier
func (c *Cart) Clear() {
	c.items = make(map[string]models.CartItem)
	c.persist("cleared")
}

// Items retourne les items triés par identifiant produit
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Product.ID < items[j].Product.ID
	})
	return items
}

// ItemCount : somme des quantités, recalculée à chaque appel
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total : somme des prix × quantités, recalculée à chaque appel
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// persist écrit l'état puis notifie le canal du visiteur. Un échec de
// persistance n'est pas traité spécialement : l'état mémoire reste la
// référence pour la requête en cours.
func (c *Cart) persist(event string) {
	ctx := context.Background()
	_ = c.st.SetJSON(ctx, cartNamespace+c.visitorID, c.Items())
	_ = c.st.Publish(ctx, cartChannel+c.visitorID, event)
}

// CartKey retourne la clé de persistance du panier d'un visiteur
func CartKey(visitorID string) string {
	return cartNamespace + visitorID
}

// CartChannel retourne le canal pub/sub du panier d'un visiteur
func CartChannel(visitorID string) string {
	return cartChannel + visitorID
}
