package registry

import (
	"sync"
)

// Registry is the in-memory source of truth for all activities.
// Since this service is a single process, a global RWMutex around the map is
// enough to keep the capacity and duplicate-membership invariants intact
// under parallel request handling.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity // key: activity name, exact match
}

// New creates a registry seeded from the given activities. The seed is deep
// copied; activities are never created or deleted after this point, only
// their rosters change.
func New(seed map[string]Activity) *Registry {
	r := &Registry{activities: make(map[string]*Activity, len(seed))}
	for name, a := range seed {
		c := a.clone()
		r.activities[name] = &c
	}
	return r
}

// Snapshot returns a deep copy of every activity keyed by name.
func (r *Registry) Snapshot() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.clone()
	}
	return out
}

// Get returns a copy of the named activity.
func (r *Registry) Get(name string) (Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, false
	}
	return a.clone(), true
}

// Len returns the number of registered activities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.activities)
}

// SignUp appends email to the named activity's roster.
// Validation order is existence, then duplicate membership, then capacity;
// when a roster is full AND the email is already on it, the caller sees the
// duplicate error.
func (r *Registry) SignUp(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for _, p := range a.Participants {
		if p == email {
			return ErrDuplicateSignup
		}
	}
	if len(a.Participants) >= a.MaxParticipants {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Withdraw removes email from the named activity's roster. The roster may
// become empty; it never becomes nil.
func (r *Registry) Withdraw(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantNotFound
}

// Reset replaces all state with a fresh copy of seed. Test harness use only;
// production never resets the registry.
func (r *Registry) Reset(seed map[string]Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = make(map[string]*Activity, len(seed))
	for name, a := range seed {
		c := a.clone()
		r.activities[name] = &c
	}
}
