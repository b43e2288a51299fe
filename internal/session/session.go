package session

// SelectAnswer records the user's choice for the current question and
// returns whether it was correct.
//
// Valid only while presenting and before any selection on the current
// question. The caller UI disables input after the first selection, but the
// guard holds regardless: a second call before Advance is a no-op, so
// score, hearts, and the wrong-answer list move exactly once per question.
// The no-op return reports the recorded selection's correctness.
func SelectAnswer(s *State, choice string) bool {
	q := s.Current()
	if q == nil {
		return false
	}
	if s.Answered {
		return s.PendingSelection == q.CorrectAnswer
	}

	s.PendingSelection = choice
	s.Answered = true

	if choice == q.CorrectAnswer {
		s.Score++
		s.HeartsEarned++
		return true
	}
	s.AnsweredWrong = append(s.AnsweredWrong, *q)
	return false
}

// Advance moves past the current question once it has been answered.
// Returns true while more questions remain, false once the session
// completes. Advancing before a selection, or after completion, is a no-op
// that reports whether the session is still presenting.
func Advance(s *State) bool {
	if s.Phase != PhasePresenting || !s.Answered {
		return s.Phase == PhasePresenting
	}

	s.PendingSelection = ""
	s.Answered = false

	if s.Index+1 < len(s.Questions) {
		s.Index++
		return true
	}
	s.Phase = PhaseCompleted
	return false
}
