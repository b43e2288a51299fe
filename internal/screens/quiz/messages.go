package quiz

import (
	"github.com/keepsake-care/keepsake/internal/session"
)

// quizReadyMsg is sent when the question set has been composed.
type quizReadyMsg struct {
	State *session.State
	Err   error
}

// autoAdvanceMsg fires the delayed advance after an answer. Gen ties the
// message to the question it was scheduled for; a stale generation means
// the session already moved on (or was torn down) and the message is
// dropped unactioned.
type autoAdvanceMsg struct {
	Gen int
}

// quizEndMsg triggers the completion flow.
type quizEndMsg struct{}
