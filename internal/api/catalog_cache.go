package api

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"loja_front_end/internal/models"
)

const (
	productsCacheKey = "products:all"
	productsCacheTTL = 10 * time.Minute
)

// CatalogCache garde la dernière liste de produits récupérée. Chaque
// fetch reçoit un jeton strictement croissant ; une réponse n'est
// appliquée que si aucun fetch plus récent n'a été émis entre-temps,
// ce qui rend l'ordre déterministe même quand les réponses réseau
// arrivent dans le désordre.
// Le cache Redis partagé (products:all) évite de solliciter l'API
// externe à chaque affichage.
type CatalogCache struct {
	client *Client
	redis  *redis.Client // optionnel, nil dans les tests

	mu        sync.Mutex
	seq       uint64
	products  []models.Product
	loaded    bool
	fetchedAt time.Time
}

func NewCatalogCache(client *Client, rdb *redis.Client) *CatalogCache {
	return &CatalogCache{client: client, redis: rdb}
}

// Products retourne la liste en cache, en la rafraîchissant au premier
// appel, après invalidation ou une fois le TTL écoulé — les mutations
// faites par une autre instance finissent donc par apparaître
func (cc *CatalogCache) Products(ctx context.Context) ([]models.Product, error) {
	cc.mu.Lock()
	if cc.loaded && time.Since(cc.fetchedAt) < productsCacheTTL {
		products := append([]models.Product(nil), cc.products...)
		cc.mu.Unlock()
		return products, nil
	}
	cc.mu.Unlock()

	// Cache Redis partagé d'abord
	if cc.redis != nil {
		if val, err := cc.redis.Get(ctx, productsCacheKey).Result(); err == nil && val != "" {
			var cached []models.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				token := cc.begin()
				cc.apply(token, cached)
				return cached, nil
			}
		}
	}

	return cc.Refresh(ctx)
}

// Refresh relance un fetch et applique le résultat, sauf si un fetch
// plus récent a été émis pendant l'attente
func (cc *CatalogCache) Refresh(ctx context.Context) ([]models.Product, error) {
	token := cc.begin()
	products, err := cc.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if cc.apply(token, products) && cc.redis != nil {
		if data, err := json.Marshal(products); err == nil {
			cc.redis.Set(ctx, productsCacheKey, data, productsCacheTTL)
		}
	}
	return products, nil
}

// begin émet un jeton de fetch strictement croissant
func (cc *CatalogCache) begin() uint64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.seq++
	return cc.seq
}

// apply n'accepte le résultat que si le jeton est toujours le plus
// récent émis ; une réponse périmée est écartée
func (cc *CatalogCache) apply(token uint64, products []models.Product) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if token != cc.seq {
		return false
	}
	cc.products = append([]models.Product(nil), products...)
	cc.loaded = true
	cc.fetchedAt = time.Now()
	return true
}

// UpsertLocal réconcilie la liste locale depuis la réponse d'une
// création ou mise à jour admin
func (cc *CatalogCache) UpsertLocal(ctx context.Context, p models.Product) {
	cc.mu.Lock()
	replaced := false
	for i := range cc.products {
		if cc.products[i].ID == p.ID {
			cc.products[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		cc.products = append(cc.products, p)
		sort.Slice(cc.products, func(i, j int) bool {
			return cc.products[i].ID < cc.products[j].ID
		})
	}
	cc.loaded = true
	cc.fetchedAt = time.Now()
	cc.mu.Unlock()
	cc.invalidateShared(ctx)
}

// RemoveLocal retire un produit supprimé côté serveur
func (cc *CatalogCache) RemoveLocal(ctx context.Context, id string) {
	cc.mu.Lock()
	kept := cc.products[:0]
	for _, p := range cc.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	cc.products = kept
	cc.mu.Unlock()
	cc.invalidateShared(ctx)
}

func (cc *CatalogCache) invalidateShared(ctx context.Context) {
	if cc.redis != nil {
		cc.redis.Del(ctx, productsCacheKey)
	}
}
