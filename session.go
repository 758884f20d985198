package gesture

import (
	"time"

	"github.com/google/uuid"
)

// session is the state of one press-to-release cycle.
type session struct {
	id     string
	origin Point
	start  time.Time

	hasMoved       bool
	isScrolling    bool // sticky once set
	longPressFired bool // at most once per session
}

func newSession(origin Point, start time.Time) *session {
	return &session{
		id:     uuid.NewString(),
		origin: origin,
		start:  start,
	}
}
