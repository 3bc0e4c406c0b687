package storage

import "context"

// Store persiste les blobs JSON des namespaces "cart-storage" et
// "auth-storage". Pas de versioning ni de migration : un blob illisible
// est simplement réhydraté comme état vide.
type Store interface {
	// GetJSON décode la valeur dans v ; retourne false si la clé n'existe pas
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
	// Publish notifie les abonnés (sync WebSocket du panier)
	Publish(ctx context.Context, channel, payload string) error
}
