package auth

import (
	"context"
	"sync"
)

// fakeUserStore is an in-memory UserStore for service and gate tests.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*User
	// seededLists records the default list titles Create was asked to seed.
	seededLists []string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, user *User, defaultListTitle string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.ID] = &copied
	f.seededLists = append(f.seededLists, defaultListTitle)
	return nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeUserStore) GetByConfirmationToken(ctx context.Context, token string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ConfirmationToken == token {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeUserStore) MarkConfirmed(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return ErrUserNotFound
	}
	u.Confirmed = true
	return nil
}

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}
