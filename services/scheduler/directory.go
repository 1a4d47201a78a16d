package scheduler

import (
	"sync"

	"meetsync/models"
)

// userEntry pairs a user record with its own lock. Mutations to a user's
// availability or bookings take the write lock; reads take the read lock, so
// no caller can observe a half-applied booking.
type userEntry struct {
	mu   sync.RWMutex
	user *models.User
}

// UserDirectory is the single process-wide aggregate owning all users. The
// directory lock only guards the map and the id counter; each user carries its
// own lock so unrelated users' requests proceed concurrently.
type UserDirectory struct {
	mu     sync.RWMutex
	users  map[int]*userEntry
	nextID int
}

// NewUserDirectory returns an empty directory. IDs are assigned sequentially
// starting at 1.
func NewUserDirectory() *UserDirectory {
	return &UserDirectory{
		users:  make(map[int]*userEntry),
		nextID: 1,
	}
}

// Add registers a new user and returns its assigned id.
func (d *UserDirectory) Add(user *models.User) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	user.ID = d.nextID
	d.nextID++
	d.users[user.ID] = &userEntry{user: user}
	return user.ID
}

// entry looks up a user's entry without touching its per-user lock.
func (d *UserDirectory) entry(userID int) (*userEntry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.users[userID]
	return e, ok
}

// Len reports the number of registered users.
func (d *UserDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
