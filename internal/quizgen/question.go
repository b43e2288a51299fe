package quizgen

import (
	"math/rand"

	"github.com/google/uuid"
)

// Category identifies what a question asks about.
type Category string

const (
	CategoryWho          Category = "who"
	CategoryRelationship Category = "relationship"
	CategoryLocation     Category = "location"
	CategoryFunFact      Category = "funFact"
	CategoryMemoryWho    Category = "memoryWho"
	CategoryMemoryRecall Category = "memoryRecall"
	CategoryVoiceWho     Category = "voiceWho"
	CategoryVoiceWhen    Category = "voiceWhen"
	CategoryVoicePeople  Category = "voicePeople"
)

// ProfileSourced reports whether the category derives from the onboarding
// roster rather than the memory board.
func (c Category) ProfileSourced() bool {
	switch c {
	case CategoryWho, CategoryRelationship, CategoryLocation, CategoryFunFact:
		return true
	}
	return false
}

// VoiceSourced reports whether the category derives from a voice recording,
// so any attached MediaRef is audio rather than a photo.
func (c Category) VoiceSourced() bool {
	switch c {
	case CategoryVoiceWho, CategoryVoiceWhen, CategoryVoicePeople:
		return true
	}
	return false
}

// WrongAnswerCount is the number of distractors per question. Together with
// the correct answer every question presents exactly four options.
const WrongAnswerCount = 3

// Question is one multiple-choice recall question. Immutable once built.
type Question struct {
	// ID is a fresh opaque identifier.
	ID string

	// Category is what the question asks about.
	Category Category

	// SubjectName is the display identity the question is about. For
	// memory questions this is the tagged name, which need not match a
	// roster profile.
	SubjectName string

	// CorrectAnswer is the single correct option. Never empty.
	CorrectAnswer string

	// WrongAnswers are the distractors: exactly three, each distinct from
	// the correct answer and from each other, never empty.
	WrongAnswers []string

	// PromptText is the question shown to the user.
	PromptText string

	// MediaRef is an opaque handle to an attached photo or recording.
	// Empty when the question has no media.
	MediaRef string

	// AuxDateText is supplementary date context for display. Empty for
	// most categories.
	AuxDateText string

	// AllAnswers is the shuffled union of CorrectAnswer and WrongAnswers.
	// Always length four.
	AllAnswers []string
}

// newQuestion assembles a Question, shuffling the answer options with rng.
// Returns false when the inputs cannot produce a structurally valid
// question; callers drop the question rather than emit a malformed one.
func newQuestion(rng *rand.Rand, category Category, subject, correct string, wrong []string, prompt, mediaRef, auxDate string) (Question, bool) {
	if correct == "" || len(wrong) != WrongAnswerCount {
		return Question{}, false
	}
	seen := map[string]bool{correct: true}
	for _, w := range wrong {
		if w == "" || seen[w] {
			return Question{}, false
		}
		seen[w] = true
	}

	all := make([]string, 0, WrongAnswerCount+1)
	all = append(all, correct)
	all = append(all, wrong...)
	rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	return Question{
		ID:            uuid.New().String(),
		Category:      category,
		SubjectName:   subject,
		CorrectAnswer: correct,
		WrongAnswers:  wrong,
		PromptText:    prompt,
		MediaRef:      mediaRef,
		AuxDateText:   auxDate,
		AllAnswers:    all,
	}, true
}

// shuffled returns a shuffled copy of values. The input is never modified.
func shuffled(rng *rand.Rand, values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
