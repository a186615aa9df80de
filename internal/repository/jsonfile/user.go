package jsonfile

import (
	"context"

	"github.com/google/uuid"

	"spendtrack/internal/model"
)

const usersCollection = "users"

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository persists users in the users collection file.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{
		store: store,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	lock := r.store.Lock(usersCollection)
	lock.Lock()
	defer lock.Unlock()

	for _, user := range load[model.User](r.store, usersCollection) {
		if user.Email == email {
			return user, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	lock := r.store.Lock(usersCollection)
	lock.Lock()
	defer lock.Unlock()

	for _, user := range load[model.User](r.store, usersCollection) {
		if user.ID == id {
			return user, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

// Create appends the user. Email uniqueness is re-checked under the
// collection lock, so two concurrent registrations for the same email
// cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	lock := r.store.Lock(usersCollection)
	lock.Lock()
	defer lock.Unlock()

	users := load[model.User](r.store, usersCollection)
	for _, existing := range users {
		if existing.Email == user.Email {
			return model.User{}, model.ErrDuplicate
		}
	}

	users = append(users, user)
	if err := save(r.store, usersCollection, users); err != nil {
		return model.User{}, err
	}

	return user, nil
}
