// Package account keeps the registered-user credential records under the
// global users key. Passwords are stored and compared in plaintext; the
// surrounding product treats hardening as out of scope.
package account

import (
	"strings"

	"github.com/google/uuid"

	"shopcore/internal/model"
	"shopcore/internal/persist"
)

type Store struct {
	adapter *persist.Adapter
	users   []model.User
}

func NewStore(adapter *persist.Adapter) *Store {
	return &Store{adapter: adapter}
}

func (s *Store) Load() {
	var users []model.User
	if s.adapter.ReadJSON(persist.UsersKey, &users) {
		s.users = users
	} else {
		s.users = nil
	}
}

// Register adds a credential record. Emails are unique, case-insensitive.
func (s *Store) Register(name, email, password string) (model.User, error) {
	var errs model.ValidationErrors
	if strings.TrimSpace(email) == "" {
		errs = append(errs, model.ValidationError{Field: "email", Message: "email is required"})
	}
	if password == "" {
		errs = append(errs, model.ValidationError{Field: "password", Message: "password is required"})
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			errs = append(errs, model.ValidationError{Field: "email", Message: "email is already registered"})
			break
		}
	}
	if len(errs) > 0 {
		return model.User{}, errs
	}

	u := model.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
	}
	next := append(append([]model.User(nil), s.users...), u)
	if err := s.adapter.WriteJSON(persist.UsersKey, next); err != nil {
		return model.User{}, err
	}
	s.users = next
	return u, nil
}

// Authenticate compares credentials against the stored records. The match is
// a plaintext comparison by design of the original product.
func (s *Store) Authenticate(email, password string) (model.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return u, true
		}
	}
	return model.User{}, false
}
