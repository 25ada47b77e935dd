package tracker

import (
	"context"
	"log"

	"github.com/CommunityWatch/CW-Backend/internal/db"
	"gorm.io/gorm"
)

// JurisdictionChecker reports whether a jurisdiction ID is known. Implemented
// by the jurisdiction store; declared here to keep the packages decoupled.
type JurisdictionChecker interface {
	JurisdictionExists(ctx context.Context, id string) (bool, error)
}

// Services holds the tracker's database handle and collaborators.
type Services struct {
	DB      *gorm.DB
	Checker JurisdictionChecker
}

// Service is the active tracker service. Initialized in Init().
var Service *Services

func Init(checker JurisdictionChecker) {
	if err := db.EnsureSchema(db.DB, "tracker"); err != nil {
		log.Fatal("Failed to ensure schema tracker: ", err)
	}

	if err := db.DB.AutoMigrate(&ComplaintRecord{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	Service = &Services{
		DB:      db.DB,
		Checker: checker,
	}
}
