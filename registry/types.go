package registry

import "errors"

// Activity is one extracurricular offering. Activities are keyed by their
// unique, case-sensitive name in the registry; the name is not repeated here.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrDuplicateSignup     = errors.New("student already signed up for this activity")
	ErrActivityFull        = errors.New("activity is full")
	ErrParticipantNotFound = errors.New("participant not found in this activity")
)

// clone returns a deep copy with a non-nil participants slice, so callers can
// never reach the registry's backing storage and rosters marshal as [].
func (a Activity) clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
