package quizgen

import (
	"fmt"
	"math/rand"

	"github.com/keepsake-care/keepsake/internal/memorylog"
	"github.com/keepsake-care/keepsake/internal/profile"
)

// FromProfile builds one question per populated field of the subject's
// profile. The wrong-answer pool for each field is the same field across
// every other named profile, padded from the field's fallback vocabulary.
// Fields that cannot reach three distinct wrong answers are skipped.
func FromProfile(rng *rand.Rand, subject profile.Person, all []profile.Person) []Question {
	if !subject.HasName() {
		return nil
	}

	others := make([]profile.Person, 0, len(all))
	for _, p := range all {
		if p.HasName() && p.ID != subject.ID {
			others = append(others, p)
		}
	}

	type fieldSpec struct {
		category Category
		correct  string
		pool     []string
		fallback []string
		prompt   string
		mediaRef string
	}

	pick := func(get func(profile.Person) string) []string {
		pool := make([]string, 0, len(others))
		for _, p := range others {
			pool = append(pool, get(p))
		}
		return pool
	}

	fields := []fieldSpec{
		{
			category: CategoryWho,
			correct:  subject.Name,
			pool:     pick(func(p profile.Person) string { return p.Name }),
			fallback: FallbackNames,
			prompt:   "Who is this?",
			mediaRef: subject.PhotoRef,
		},
		{
			category: CategoryRelationship,
			correct:  subject.Relationship,
			pool:     pick(func(p profile.Person) string { return p.Relationship }),
			fallback: FallbackRelationships,
			prompt:   fmt.Sprintf("What is your relationship with %s?", subject.Name),
		},
		{
			category: CategoryLocation,
			correct:  subject.Location,
			pool:     pick(func(p profile.Person) string { return p.Location }),
			fallback: FallbackLocations,
			prompt:   fmt.Sprintf("Where does %s live?", subject.Name),
		},
		{
			category: CategoryFunFact,
			correct:  subject.FunFact,
			pool:     pick(func(p profile.Person) string { return p.FunFact }),
			fallback: FallbackFunFacts,
			prompt:   fmt.Sprintf("What is a fun fact about %s?", subject.Name),
		},
	}

	var questions []Question
	for _, f := range fields {
		if f.correct == "" {
			continue
		}
		wrong := SelectWrong(rng, f.correct, f.pool, f.fallback, WrongAnswerCount)
		q, ok := newQuestion(rng, f.category, subject.Name, f.correct, wrong, f.prompt, f.mediaRef, "")
		if !ok {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

// FromMemory builds questions from one quizzable memory entry.
//
// Every entry yields a "who is this memory about" question. Voice entries
// additionally yield "whose voice", "when was this from", and "who is in
// this memory" questions. Entries with caption text yield a recall question
// over the first part of the text. Sub-questions that cannot reach four
// options are dropped independently.
func FromMemory(rng *rand.Rand, entry memorylog.Entry, people []profile.Person, entries []memorylog.Entry) []Question {
	if !entry.Quizzable() {
		return nil
	}

	// Union of every name the app knows about, roster and board alike.
	namePool := profile.Names(people)
	for _, e := range entries {
		if e.PersonName != "" {
			namePool = append(namePool, e.PersonName)
		}
	}

	var questions []Question

	whoMedia := ""
	if entry.Kind == memorylog.KindPhoto {
		whoMedia = entry.MediaRef
	}
	if q, ok := nameQuestion(rng, CategoryMemoryWho, entry, namePool, "Who is this memory about?", whoMedia); ok {
		questions = append(questions, q)
	}

	if entry.Kind == memorylog.KindVoice {
		if q, ok := nameQuestion(rng, CategoryVoiceWho, entry, namePool, "Whose voice is this?", entry.MediaRef); ok {
			questions = append(questions, q)
		}

		datePool := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.ID != entry.ID && e.Kind == memorylog.KindVoice {
				datePool = append(datePool, e.MonthYear())
			}
		}
		wrong := SelectWrong(rng, entry.MonthYear(), datePool, fallbackMonths(entry.CreatedAt, 8), WrongAnswerCount)
		if q, ok := newQuestion(rng, CategoryVoiceWhen, entry.PersonName, entry.MonthYear(), wrong, "When was this recording from?", entry.MediaRef, ""); ok {
			questions = append(questions, q)
		}

		// Same selection logic as voiceWho; kept as a separate category
		// for UI labeling.
		if q, ok := nameQuestion(rng, CategoryVoicePeople, entry, namePool, "Who is in this memory?", entry.MediaRef); ok {
			questions = append(questions, q)
		}
	}

	if prefix := entry.RecallPrefix(); prefix != "" {
		textPool := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.ID != entry.ID {
				textPool = append(textPool, e.RecallPrefix())
			}
		}
		wrong := SelectWrong(rng, prefix, textPool, FallbackMemorySnippets, WrongAnswerCount)
		prompt := fmt.Sprintf("What do you remember about this moment with %s?", entry.PersonName)
		if q, ok := newQuestion(rng, CategoryMemoryRecall, entry.PersonName, prefix, wrong, prompt, "", entry.MonthYear()); ok {
			questions = append(questions, q)
		}
	}

	return questions
}

// nameQuestion builds a "which person" question over the shared name pool.
func nameQuestion(rng *rand.Rand, category Category, entry memorylog.Entry, namePool []string, prompt, mediaRef string) (Question, bool) {
	wrong := SelectWrong(rng, entry.PersonName, namePool, FallbackNames, WrongAnswerCount)
	return newQuestion(rng, category, entry.PersonName, entry.PersonName, wrong, prompt, mediaRef, "")
}
