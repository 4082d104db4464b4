package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/models"
)

// memoryUserRepository is the in-memory implementation of [UserRepository].
// It keeps accounts in an append-ordered slice guarded by a single RWMutex:
// mutating operations take the exclusive lock for their whole
// check-then-commit sequence, read operations share the read lock and
// return copies, so callers always observe a consistent snapshot.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make([]models.User, 0),
		logger: logger,
	}
}

func (r *memoryUserRepository) CreateUsers(ctx context.Context, users []models.User) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// check every login before appending anything
	seen := make(map[string]struct{}, len(users))
	for _, u := range users {
		if _, dup := seen[u.Login]; dup {
			return nil, ErrLoginAlreadyExists
		}
		seen[u.Login] = struct{}{}

		if r.activeIndexByLogin(u.Login) >= 0 {
			return nil, ErrLoginAlreadyExists
		}
	}

	created := make([]models.User, 0, len(users))
	for _, u := range users {
		r.users = append(r.users, u)
		created = append(created, u)
	}

	return created, nil
}

func (r *memoryUserRepository) FindActiveByLogin(ctx context.Context, login string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.activeIndexByLogin(login); i >= 0 {
		return r.users[i], nil
	}
	return models.User{}, ErrNoUserWasFound
}

func (r *memoryUserRepository) FindByLogin(ctx context.Context, login string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Login == login {
			return r.users[i], nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (r *memoryUserRepository) FindActiveByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.activeIndexByID(id); i >= 0 {
		return r.users[i], nil
	}
	return models.User{}, ErrNoUserWasFound
}

func (r *memoryUserRepository) ListActive(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]models.User, 0, len(r.users))
	for i := range r.users {
		if r.users[i].IsActive() {
			active = append(active, r.users[i])
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})

	return active, nil
}

func (r *memoryUserRepository) ListActiveOlderThan(ctx context.Context, threshold time.Time) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.User, 0)
	for i := range r.users {
		u := r.users[i]
		if u.IsActive() && u.Birthday != nil && u.Birthday.Before(threshold) {
			matched = append(matched, u)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	return matched, nil
}

func (r *memoryUserRepository) UpdateDetails(ctx context.Context, id string, details models.UpdateDetailsRequest, stamp models.AuditStamp) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.activeIndexByID(id)
	if i < 0 {
		return ErrNoUserWasFound
	}

	r.users[i].Name = details.Name
	r.users[i].Gender = details.Gender
	r.users[i].Birthday = details.Birthday
	r.applyStamp(i, stamp)

	return nil
}

func (r *memoryUserRepository) UpdatePassword(ctx context.Context, id string, newPassword string, stamp models.AuditStamp) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.activeIndexByID(id)
	if i < 0 {
		return ErrNoUserWasFound
	}

	r.users[i].Password = newPassword
	r.applyStamp(i, stamp)

	return nil
}

func (r *memoryUserRepository) UpdateLogin(ctx context.Context, id string, newLogin string, stamp models.AuditStamp) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.activeIndexByID(id)
	if i < 0 {
		return ErrNoUserWasFound
	}

	if j := r.activeIndexByLogin(newLogin); j >= 0 && j != i {
		return ErrLoginAlreadyExists
	}

	r.users[i].Login = newLogin
	r.applyStamp(i, stamp)

	return nil
}

func (r *memoryUserRepository) Revoke(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.activeIndexByLogin(login)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	revokedAt := stamp.At
	r.users[i].RevokedAt = &revokedAt
	r.users[i].RevokedBy = stamp.By
	r.applyStamp(i, stamp)

	return r.users[i], nil
}

func (r *memoryUserRepository) Restore(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := -1
	for j := range r.users {
		if r.users[j].Login == login && !r.users[j].IsActive() {
			i = j
			break
		}
	}
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	// the freed login may have been reused by a newer active account
	if r.activeIndexByLogin(login) >= 0 {
		return models.User{}, ErrLoginAlreadyExists
	}

	r.users[i].RevokedAt = nil
	r.users[i].RevokedBy = ""
	r.applyStamp(i, stamp)

	return r.users[i], nil
}

// activeIndexByLogin returns the index of the first active account holding
// login, or -1. Callers must hold the lock.
func (r *memoryUserRepository) activeIndexByLogin(login string) int {
	for i := range r.users {
		if r.users[i].Login == login && r.users[i].IsActive() {
			return i
		}
	}
	return -1
}

// activeIndexByID returns the index of the active account with id, or -1.
// Callers must hold the lock.
func (r *memoryUserRepository) activeIndexByID(id string) int {
	for i := range r.users {
		if r.users[i].ID == id && r.users[i].IsActive() {
			return i
		}
	}
	return -1
}

// applyStamp records the mutation audit pair. Callers must hold the lock.
func (r *memoryUserRepository) applyStamp(i int, stamp models.AuditStamp) {
	r.users[i].ModifiedAt = stamp.At
	r.users[i].ModifiedBy = stamp.By
}
