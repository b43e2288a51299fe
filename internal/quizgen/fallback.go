package quizgen

import "time"

// Fallback vocabularies pad distractor pools when the caregiver-entered data
// is too sparse to supply three plausible wrong answers. Each list is
// curated to hold well over WrongAnswerCount values unlikely to collide with
// real user input.

// FallbackNames are generic person names.
var FallbackNames = []string{
	"Margaret", "John", "Susan", "David", "Elizabeth", "Peter",
	"Barbara", "Michael", "Patricia", "James", "Helen", "Robert",
}

// FallbackRelationships are common relationship labels.
var FallbackRelationships = []string{
	"Friend", "Neighbour", "Cousin", "Niece", "Nephew", "Colleague",
	"Grandson", "Granddaughter", "Brother", "Sister",
}

// FallbackLocations are NZ place names.
var FallbackLocations = []string{
	"Wellington", "Auckland", "Christchurch", "Hamilton", "Tauranga",
	"Dunedin", "Napier", "Nelson", "Rotorua", "Invercargill",
	"Whangarei", "Gisborne",
}

// FallbackFunFacts are generic hobby facts.
var FallbackFunFacts = []string{
	"Loves gardening", "Plays the piano", "Enjoys fishing",
	"Bakes wonderful scones", "Collects stamps", "Walks every morning",
	"Does crossword puzzles", "Knits jumpers", "Loves the beach",
	"Grows tomatoes",
}

// FallbackMemorySnippets are generic moment descriptions for padding recall
// questions.
var FallbackMemorySnippets = []string{
	"We had a lovely afternoon in the garden",
	"We shared a pot of tea and talked for hours",
	"We went for a walk along the waterfront",
	"We baked together in the kitchen",
	"We looked through the old photo albums",
	"We sat on the porch watching the birds",
	"We had fish and chips by the sea",
	"We sang along to the old records",
}

// fallbackMonths synthesizes month-year labels around an entry's creation
// date for padding "when was this from" questions. Earlier months only, so
// a padded option never postdates the memory itself.
func fallbackMonths(createdAt time.Time, n int) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, createdAt.AddDate(0, -i, 0).Format("January 2006"))
	}
	return out
}
