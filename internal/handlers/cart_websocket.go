package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"loja_front_end/internal/middleware"
	"loja_front_end/internal/models"
	"loja_front_end/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket gère la synchronisation temps réel du panier : chaque
// mutation publie "updated"/"cleared" sur le canal du visiteur, et les
// onglets abonnés reçoivent items + agrégats recalculés.
func (h *Handler) CartWebSocket(c *gin.Context) {
	if h.Redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Synchronisation indisponible"})
		return
	}

	visitorID := middleware.VisitorID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	pubsub := h.Redis.Subscribe(ctx, store.CartChannel(visitorID))
	defer pubsub.Close()

	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}

			data, err := h.Redis.Get(ctx, store.CartKey(visitorID)).Result()

			var response map[string]interface{}
			if err != nil || data == "" {
				response = map[string]interface{}{
					"type":  "cart_updated",
					"items": []interface{}{},
					"total": 0,
					"count": 0,
				}
			} else {
				var items []models.CartItem
				json.Unmarshal([]byte(data), &items)

				total := 0.0
				count := 0
				for _, item := range items {
					total += item.Product.Price * float64(item.Quantity)
					count += item.Quantity
				}

				response = map[string]interface{}{
					"type":  "cart_updated",
					"items": items,
					"total": total,
					"count": count,
				}
			}

			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
