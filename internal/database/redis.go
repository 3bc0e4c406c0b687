package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"loja_front_end/internal/config"
)

var Redis *redis.Client

// ConnectRedis ouvre la connexion qui porte l'état persisté des
// visiteurs (panier, session), le cache produits et le rate limiting
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.Getenv("REDIS_PASSWORD", ""),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Impossible de se connecter à Redis : ", err)
	}
	log.Println("✅ Connecté à Redis :", config.RedisAddr())
}
