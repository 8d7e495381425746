package scheduling

import "sync"

// StaffLocks serializes the conflict-check-then-write sequence per staff
// member. The document store offers no cross-collection transaction, so
// without this two concurrent requests for the same window could both pass
// the conflict check before either writes.
type StaffLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStaffLocks creates an empty lock set.
func NewStaffLocks() *StaffLocks {
	return &StaffLocks{locks: make(map[string]*sync.Mutex)}
}

func (s *StaffLocks) get(staffID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[staffID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[staffID] = lock
	}
	return lock
}

// Lock acquires the mutex for a staff member.
func (s *StaffLocks) Lock(staffID string) {
	s.get(staffID).Lock()
}

// Unlock releases the mutex for a staff member.
func (s *StaffLocks) Unlock(staffID string) {
	s.get(staffID).Unlock()
}
