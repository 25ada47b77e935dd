package auth

import (
	"log"
	"os"

	"github.com/CommunityWatch/CW-Backend/internal/db"
)

// Service is the active account service. Initialized in Init().
var Service *Accounts

func Init() {
	if err := db.EnsureSchema(db.DB, "app_auth"); err != nil {
		log.Fatal("Failed to ensure schema app_auth: ", err)
	}

	if err := db.DB.AutoMigrate(&Account{}, &StandardUser{}, &CodeUser{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	secret := os.Getenv("AUTH_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("AUTH_TOKEN_SECRET is empty")
	}

	Service = &Accounts{
		DB:     db.DB,
		Issuer: NewJWTAuthority([]byte(secret)),
		Hasher: SHA256CredentialHasher{},
	}
}

// Verifier returns the token verifier backed by the same signing secret the
// issuer uses. Middleware takes this to authenticate requests.
func Verifier() TokenVerifier {
	secret := os.Getenv("AUTH_TOKEN_SECRET")
	return NewJWTAuthority([]byte(secret))
}
