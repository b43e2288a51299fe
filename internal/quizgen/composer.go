package quizgen

import (
	"math/rand"

	"github.com/keepsake-care/keepsake/internal/memorylog"
	"github.com/keepsake-care/keepsake/internal/profile"
)

// MinSubjects is the minimum number of named profiles needed to compose a
// quiz. Below this the wrong-answer pools are too thin to be meaningful.
const MinSubjects = 2

// DefaultTargetCount is the standard quiz length.
const DefaultTargetCount = 10

// Compose assembles an ordered question set from the roster and the memory
// board.
//
// Questions are generated into two pools, profile-sourced and
// memory-sourced, each shuffled independently. Memory questions fill at
// most max(1, targetCount/3) slots so that freely-authored board entries
// cannot dominate the quiz; profile questions fill the rest. The combined
// set is shuffled again and truncated to targetCount.
//
// Returns nil when fewer than MinSubjects named profiles exist. That is the
// engine's only failure signal; callers render it as "no quiz available".
func Compose(rng *rand.Rand, people []profile.Person, entries []memorylog.Entry, targetCount int) []Question {
	named := profile.Named(people)
	if len(named) < MinSubjects || targetCount <= 0 {
		return nil
	}
	quizzable := memorylog.Quizzable(entries)

	var profileQuestions []Question
	for _, p := range named {
		profileQuestions = append(profileQuestions, FromProfile(rng, p, named)...)
	}

	var memoryQuestions []Question
	for _, e := range quizzable {
		memoryQuestions = append(memoryQuestions, FromMemory(rng, e, named, quizzable)...)
	}

	shuffleQuestions(rng, profileQuestions)
	shuffleQuestions(rng, memoryQuestions)

	memorySlots := min(len(memoryQuestions), max(1, targetCount/3))
	profileSlots := min(len(profileQuestions), targetCount-memorySlots)

	combined := make([]Question, 0, profileSlots+memorySlots)
	combined = append(combined, profileQuestions[:profileSlots]...)
	combined = append(combined, memoryQuestions[:memorySlots]...)
	shuffleQuestions(rng, combined)

	if len(combined) > targetCount {
		combined = combined[:targetCount]
	}
	return combined
}

func shuffleQuestions(rng *rand.Rand, qs []Question) {
	rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
