package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"loja_front_end/internal/api"
	"loja_front_end/internal/cep"
	"loja_front_end/internal/config"
	"loja_front_end/internal/database"
	"loja_front_end/internal/handlers"
	"loja_front_end/internal/middleware"
	"loja_front_end/internal/routes"
	"loja_front_end/internal/services"
	"loja_front_end/internal/storage"
)

func main() {
	config.Load()

	sessionSecret := config.SessionSecret()
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	database.ConnectRedis()
	services.ConnectMinio()

	apiClient := api.NewClient(config.APIBaseURL())
	log.Println("✅ API externe :", config.APIBaseURL())

	catalog := api.NewCatalogCache(apiClient, database.Redis)
	cepClient := cep.NewClient(config.ViaCEPBaseURL())

	st := storage.NewRedisStore(database.Redis)
	cookies := middleware.NewCookieStore(sessionSecret)

	h := handlers.New(apiClient, catalog, cepClient, database.Redis)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Getenv("FRONT_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, h, cookies, st, database.Redis)

	port := config.Getenv("PORT", "8080")
	log.Println("🚀 Serveur Loja lancé sur le port", port)
	r.Run(":" + port)
}
