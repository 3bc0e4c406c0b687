package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par email
func LoginRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := context.Background()
		cooldownKey := "login_cooldown:" + input.Email
		if rdb.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := rdb.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       retryMessage(ttl),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// retryMessage arrondit le temps d'attente vers le haut : à moins d'une
// minute restante, on affiche les secondes plutôt que "0 minutes"
func retryMessage(ttl time.Duration) string {
	if ttl < time.Minute {
		seconds := int(math.Ceil(ttl.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		return fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d secondes", seconds)
	}
	minutes := int(math.Ceil(ttl.Minutes()))
	return fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", minutes)
}

// RecordLoginFailure incrémente le compteur d'échecs et arme le
// cooldown une fois la limite atteinte
func RecordLoginFailure(rdb *redis.Client, email string) {
	if rdb == nil {
		return
	}
	ctx := context.Background()
	key := "login_attempts:" + email

	attempts, _ := rdb.Incr(ctx, key).Result()
	rdb.Expire(ctx, key, LoginCooldown)

	if attempts >= LoginMaxAttempts {
		rdb.Set(ctx, "login_cooldown:"+email, "1", LoginCooldown)
		rdb.Del(ctx, key)
	}
}

// ClearLoginAttempts remet le compteur à zéro après un login réussi
func ClearLoginAttempts(rdb *redis.Client, email string) {
	if rdb == nil {
		return
	}
	ctx := context.Background()
	rdb.Del(ctx, "login_attempts:"+email)
	rdb.Del(ctx, "login_cooldown:"+email)
}
