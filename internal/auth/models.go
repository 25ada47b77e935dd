package auth

import (
	"time"

	"github.com/google/uuid"
)

// Account is the internal identity every credential maps to. Credentials
// (standard or code) reference an account; tokens are minted for its ID.
type Account struct {
	AccountID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"account_id"`
	DateCreated time.Time `gorm:"not null" json:"date_created"`
}

// StandardUser stores the credential for an email/username account.
// The identifier is the primary key: one account per identifier.
type StandardUser struct {
	Identifier   string    `gorm:"primaryKey" json:"identifier"`
	PasswordHash string    `gorm:"not null" json:"-"`
	AccountID    uuid.UUID `gorm:"type:uuid;not null" json:"-"`
}

// CodeUser stores the credential for a code account. The credential hash is
// both identity and secret: knowing the hash preimage (code + answers) is the
// only way to address the row.
type CodeUser struct {
	CredentialHash string    `gorm:"primaryKey" json:"-"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null" json:"-"`
}

func (Account) TableName() string      { return "app_auth.accounts" }
func (StandardUser) TableName() string { return "app_auth.standard_users" }
func (CodeUser) TableName() string     { return "app_auth.code_users" }
