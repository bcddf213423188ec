package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string
	AppAuthKey string
	AppEncKey  string
	CSRFKey    string
	UploadDir  string
	PublicPath string
	AppEnv     string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: no .env file found")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       getenvDefault("APP_PORT", ":8080"),
		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),
		CSRFKey:    os.Getenv("CSRF_KEY"),
		UploadDir:  getenvDefault("UPLOAD_DIR", "public/images"),
		PublicPath: getenvDefault("PUBLIC_PATH", "/images"),
		AppEnv:     getenvDefault("APP_ENV", "development"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
