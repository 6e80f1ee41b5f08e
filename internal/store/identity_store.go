package store

import (
	"strings"
	"sync"

	"miniblog/api/internal/models"
)

// IdentityStore holds the fixed account set. Accounts are created once at
// process start; only the bio and linked-provider flags mutate afterwards.
type IdentityStore struct {
	mu       sync.RWMutex
	accounts []models.Account
}

func NewIdentityStore(accounts []models.Account) *IdentityStore {
	seen := make(map[string]struct{}, len(accounts))
	owners := 0
	for _, account := range accounts {
		if _, dup := seen[account.Username]; dup {
			panic("identity store: duplicate username " + account.Username)
		}
		seen[account.Username] = struct{}{}
		if account.IsOwner {
			owners++
		}
	}
	if owners > 1 {
		panic("identity store: more than one owner account")
	}

	copied := make([]models.Account, len(accounts))
	copy(copied, accounts)
	return &IdentityStore{accounts: copied}
}

// Authenticate matches username and password exactly, case-sensitive, no
// hashing. The failure is uniform: an unknown username and a wrong password
// are indistinguishable to the caller.
func (s *IdentityStore) Authenticate(username, password string) (models.Account, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return models.Account{}, ErrValidation
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Username == username && account.Password == password {
			return account, nil
		}
	}
	return models.Account{}, ErrInvalidCredentials
}

func (s *IdentityStore) FindByUsername(username string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

func (s *IdentityStore) GetByID(id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

// UpdateProfile merges the supplied fields into the target account. Only
// the account itself may update its profile; any other combination is a
// rejected no-op.
func (s *IdentityStore) UpdateProfile(actorID, targetID string, update models.ProfileUpdate) (models.Account, error) {
	if actorID == "" || actorID != targetID {
		return models.Account{}, ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID != targetID {
			continue
		}
		if update.Bio != nil {
			s.accounts[i].Bio = *update.Bio
		}
		if update.Google != nil {
			s.accounts[i].OAuth.Google = *update.Google
		}
		if update.GitHub != nil {
			s.accounts[i].OAuth.GitHub = *update.GitHub
		}
		return s.accounts[i], nil
	}
	return models.Account{}, ErrAccountNotFound
}
