package configs

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
}

func LoadSessionKeys(env ENV) (*SessionKeys, error) {
	if env.AppAuthKey == "" {
		return nil, fmt.Errorf("APP_AUTH_KEY environment variable not set")
	}
	if env.AppEncKey == "" {
		return nil, fmt.Errorf("APP_ENC_KEY environment variable not set")
	}

	authKey, err := base64.URLEncoding.DecodeString(env.AppAuthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_AUTH_KEY: %w", err)
	}
	encKey, err := base64.URLEncoding.DecodeString(env.AppEncKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_ENC_KEY: %w", err)
	}

	switch len(encKey) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("APP_ENC_KEY must decode to 16, 24 or 32 bytes, got %d", len(encKey))
	}

	return &SessionKeys{AuthKey: authKey, EncKey: encKey}, nil
}

// GenerateAndPrintSessionKeys emits a fresh key pair for the .env file.
func GenerateAndPrintSessionKeys() error {
	authKey := securecookie.GenerateRandomKey(64)
	if authKey == nil {
		return fmt.Errorf("could not generate authentication key")
	}
	encKey := securecookie.GenerateRandomKey(32)
	if encKey == nil {
		return fmt.Errorf("could not generate encryption key")
	}

	fmt.Printf("APP_AUTH_KEY=%s\n", base64.URLEncoding.EncodeToString(authKey))
	fmt.Printf("APP_ENC_KEY=%s\n", base64.URLEncoding.EncodeToString(encKey))
	return nil
}
