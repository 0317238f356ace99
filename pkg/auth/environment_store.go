package auth

import (
	"os"
	"time"
)

// EnvironmentStore implements CredentialStore using environment variables.
// It is read-only and exists so plain OAUTH_TOKEN setups keep working.
type EnvironmentStore struct{}

// NewEnvironmentStore creates a new environment-based credential store
func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{}
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(account *Account) error {
	return ErrStoreUnavailable
}

// Retrieve gets the token from environment variables
func (e *EnvironmentStore) Retrieve(label string) (*Account, error) {
	token := os.Getenv("OAUTH_TOKEN")
	if token == "" {
		return nil, ErrCredentialsNotFound
	}

	if label == "" {
		label = "default"
	}

	return &Account{
		Label:        label,
		Token:        token,
		UserID:       os.Getenv("USER_ID"),
		LastModified: time.Now(),
	}, nil
}

// List returns a single account if the environment token is set
func (e *EnvironmentStore) List() ([]*Account, error) {
	account, err := e.Retrieve("")
	if err != nil {
		return []*Account{}, nil
	}
	return []*Account{account}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete(label string) error {
	return ErrStoreUnavailable
}

// Exists checks if the environment token is set
func (e *EnvironmentStore) Exists(label string) bool {
	return os.Getenv("OAUTH_TOKEN") != ""
}
