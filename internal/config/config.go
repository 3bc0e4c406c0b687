package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Getenv retourne la variable d'environnement ou la valeur par défaut
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// APIBaseURL : URL de base de l'API catalogue/utilisateurs externe.
// Les chemins exacts (/product, /users/login, ...) sont de la configuration,
// pas un contrat figé.
func APIBaseURL() string {
	return Getenv("API_BASE_URL", "http://localhost:3001")
}

// ViaCEPBaseURL : service tiers de recherche d'adresse par CEP
func ViaCEPBaseURL() string {
	return Getenv("VIACEP_BASE_URL", "https://viacep.com.br")
}

func RedisAddr() string {
	return Getenv("REDIS_ADDR", "localhost:6379")
}

func SessionSecret() string {
	return os.Getenv("SESSION_SECRET")
}
