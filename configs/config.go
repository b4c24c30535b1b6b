package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// llave del modelo de Gemini; si falta, el recomendador queda en modo
	// solo-diccionario y degrada con la disculpa fija
	GeminiAPIKey string

	// fallback si app_config aún no existe en la base
	WhatsAppNumber string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ no .env file, using environment")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "churre.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         time.Duration(24) * time.Hour,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "51936494711"),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
