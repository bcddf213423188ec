package fakers

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/storefront-go/storefront/app/models"
	"golang.org/x/crypto/bcrypt"
)

func UserFaker() *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password:", err)
	}

	return &models.User{
		Name:     faker.Name(),
		Email:    faker.Email(),
		Password: string(hashed),
	}
}
