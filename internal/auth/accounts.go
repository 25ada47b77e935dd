package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrConflict reports that the identifier or credential hash already has
	// an account. The stored credential is left untouched.
	ErrConflict = errors.New("account already exists")

	// ErrUnauthorized reports an unknown identifier or failed verification.
	// Callers must not distinguish the two cases.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrInvalidInput reports an identifier or password that fails policy.
	ErrInvalidInput = errors.New("invalid account details")
)

// CredentialHasher maps a code account's secret details to its identity hash.
// The hash doubles as the database lookup key, so any change to answer
// wording, order, or casing produces a different identity. The interface
// exists so this scheme can be swapped without touching account logic.
type CredentialHasher interface {
	HashCredentials(code string, answers []string) string
}

// SHA256CredentialHasher joins code and answers with NUL separators and
// returns the hex SHA-256 digest. Answer order is as submitted, not sorted.
type SHA256CredentialHasher struct{}

func (SHA256CredentialHasher) HashCredentials(code string, answers []string) string {
	payload := code + "\x00" + strings.Join(answers, "\x00")
	digest := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(digest[:])
}

// Accounts owns all account creation and login flows. Handlers go through
// the package-level Service initialized in Init().
type Accounts struct {
	DB     *gorm.DB
	Issuer TokenIssuer
	Hasher CredentialHasher
}

// createAccount inserts a fresh internal account row and returns its ID.
func (a *Accounts) createAccount(ctx context.Context) (uuid.UUID, error) {
	account := Account{
		AccountID:   uuid.New(),
		DateCreated: time.Now(),
	}
	if err := a.DB.WithContext(ctx).Create(&account).Error; err != nil {
		return uuid.Nil, fmt.Errorf("create account: %w", err)
	}
	return account.AccountID, nil
}

// isUniqueViolation reports whether err is a Postgres duplicate-key error.
// Creation races between the existence check and the insert land here.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateStandardAccount registers an email or username account and returns a
// minted bearer token. The identifier decides its own kind: anything with an
// "@" is validated as an email, everything else as a username.
func (a *Accounts) CreateStandardAccount(ctx context.Context, identifier, password string) (string, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	password = strings.TrimSpace(password)

	if strings.Contains(identifier, "@") {
		if !isValidEmail(identifier) {
			return "", ErrInvalidInput
		}
	} else if !isValidUsername(identifier) {
		return "", ErrInvalidInput
	}
	if !isValidPassword(password) {
		return "", ErrInvalidInput
	}

	var existing StandardUser
	err := a.DB.WithContext(ctx).First(&existing, "identifier = ?", identifier).Error
	if err == nil {
		return "", ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check identifier: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	accountID, err := a.createAccount(ctx)
	if err != nil {
		return "", err
	}

	user := StandardUser{
		Identifier:   identifier,
		PasswordHash: string(hashed),
		AccountID:    accountID,
	}
	if err := a.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return "", ErrConflict
		}
		return "", fmt.Errorf("store credentials: %w", err)
	}

	return a.Issuer.IssueToken(accountID.String())
}

// LoginStandardAccount verifies an identifier/password pair and returns a
// minted bearer token.
func (a *Accounts) LoginStandardAccount(ctx context.Context, identifier, password string) (string, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	password = strings.TrimSpace(password)

	var user StandardUser
	err := a.DB.WithContext(ctx).First(&user, "identifier = ?", identifier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("lookup identifier: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrUnauthorized
	}

	return a.Issuer.IssueToken(user.AccountID.String())
}

// CreateCodeAccount registers a code account keyed by the credential hash of
// code + answers and returns a minted bearer token.
func (a *Accounts) CreateCodeAccount(ctx context.Context, code string, answers []string) (string, error) {
	code, answers = cleanCodeDetails(code, answers)
	if code == "" || len(answers) != 3 {
		return "", ErrInvalidInput
	}
	for _, ans := range answers {
		if ans == "" || containsNull(ans) {
			return "", ErrInvalidInput
		}
	}
	if containsNull(code) {
		return "", ErrInvalidInput
	}

	hash := a.Hasher.HashCredentials(code, answers)

	var existing CodeUser
	err := a.DB.WithContext(ctx).First(&existing, "credential_hash = ?", hash).Error
	if err == nil {
		return "", ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check credential hash: %w", err)
	}

	accountID, err := a.createAccount(ctx)
	if err != nil {
		return "", err
	}

	user := CodeUser{
		CredentialHash: hash,
		AccountID:      accountID,
	}
	if err := a.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return "", ErrConflict
		}
		return "", fmt.Errorf("store credentials: %w", err)
	}

	return a.Issuer.IssueToken(accountID.String())
}

// LoginCodeAccount looks up the credential hash for code + answers and
// returns a minted bearer token when it exists.
func (a *Accounts) LoginCodeAccount(ctx context.Context, code string, answers []string) (string, error) {
	code, answers = cleanCodeDetails(code, answers)
	if code == "" || len(answers) != 3 {
		return "", ErrUnauthorized
	}

	hash := a.Hasher.HashCredentials(code, answers)

	var user CodeUser
	err := a.DB.WithContext(ctx).First(&user, "credential_hash = ?", hash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("lookup credential hash: %w", err)
	}

	return a.Issuer.IssueToken(user.AccountID.String())
}

// cleanCodeDetails trims and lowercases the code and every answer, matching
// what the account-creation form submits.
func cleanCodeDetails(code string, answers []string) (string, []string) {
	code = strings.ToLower(strings.TrimSpace(code))
	cleaned := make([]string, len(answers))
	for i, ans := range answers {
		cleaned[i] = strings.ToLower(strings.TrimSpace(ans))
	}
	return code, cleaned
}
