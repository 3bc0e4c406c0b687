package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"loja_front_end/internal/handlers"
	"loja_front_end/internal/middleware"
	"loja_front_end/internal/storage"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cookies *sessions.CookieStore, st storage.Store, rdb *redis.Client) {
	r.Use(middleware.VisitorSession(cookies, st))

	api := r.Group("/api")
	{
		// Boutique
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)

		// Panier
		api.GET("/cart", h.GetCart)
		api.POST("/cart/add", h.AddToCart)
		api.PUT("/cart/:productId", h.UpdateCartQuantity)
		api.DELETE("/cart/:productId", h.RemoveFromCart)
		api.DELETE("/cart", h.ClearCart)

		// Checkout
		api.GET("/checkout", h.CheckoutSummary)
		api.POST("/checkout", h.SubmitCheckout)
		api.GET("/cep/:cep", h.LookupCEP)

		// Auth
		api.POST("/auth/login", middleware.LoginRateLimit(rdb), h.Login)
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", h.Me)

		// Console admin
		admin := api.Group("/admin", middleware.RequireAdmin)
		{
			admin.GET("/products", h.AdminListProducts)
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)
			admin.POST("/images", h.UploadProductImage)
		}
	}

	// Synchronisation temps réel du panier
	r.GET("/ws/cart", h.CartWebSocket)
}
