package user

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrMissingData = errors.New("name and email are required")
	ErrEmailTaken  = errors.New("email already exists")
)

// User is the identity record of the directory. Immutable once created;
// there is no update operation.
type User struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// Store is the in-memory table of record for users. IDs are assigned
// sequentially starting at 1 and never reused.
type Store struct {
	mu     sync.Mutex
	users  map[int64]User
	nextID int64
}

func NewStore() *Store {
	return &Store{
		users:  make(map[int64]User),
		nextID: 1,
	}
}

// Get returns the user by ID.
func (s *Store) Get(id int64) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	return u, ok
}

// Create validates, assigns the next ID and inserts. The uniqueness scan,
// the ID assignment and the insert run under one lock so concurrent calls
// can neither duplicate an email nor an ID.
func (s *Store) Create(name, email, phone string) (User, error) {
	if name == "" || email == "" {
		return User{}, ErrMissingData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return User{}, ErrEmailTaken
		}
	}

	u := User{
		ID:        s.nextID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.users[u.ID] = u
	return u, nil
}

// GetMany resolves the requested IDs in request order. Missing IDs are
// collected separately.
func (s *Store) GetMany(ids []int64) (found []User, missing []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			found = append(found, u)
		} else {
			missing = append(missing, id)
		}
	}
	return found, missing
}

// Len reports how many users are stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
