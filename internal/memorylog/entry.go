package memorylog

import (
	"strings"
	"time"
)

// EntryKind distinguishes how a memory was captured.
type EntryKind string

const (
	KindPhoto EntryKind = "photo"
	KindVoice EntryKind = "voice"
)

// Entry is one memory board item: a photo or voice recording with optional
// caption text, tagged with the person it is about.
type Entry struct {
	// ID is the opaque row identifier.
	ID string

	// PersonName is who the memory is about. Entries with an empty
	// PersonName are not quizzable.
	PersonName string

	// Text is the freeform caption or transcript. May be empty.
	Text string

	// Kind is how the memory was recorded.
	Kind EntryKind

	// MediaRef is an opaque handle to the stored photo or audio file,
	// depending on Kind.
	MediaRef string

	// CreatedAt is when the entry was recorded.
	CreatedAt time.Time
}

// Quizzable reports whether the entry can seed quiz questions.
func (e Entry) Quizzable() bool {
	return e.PersonName != ""
}

// MonthYear formats the entry's creation time as "January 2026" for the
// "when was this from" question.
func (e Entry) MonthYear() string {
	return e.CreatedAt.Format("January 2006")
}

// RecallPrefixLen is how much of an entry's text is used as a recall answer.
const RecallPrefixLen = 60

// RecallPrefix returns the first RecallPrefixLen runes of the entry text,
// whitespace-trimmed. Cutting on runes keeps multi-byte text intact.
func (e Entry) RecallPrefix() string {
	text := strings.TrimSpace(e.Text)
	runes := []rune(text)
	if len(runes) <= RecallPrefixLen {
		return text
	}
	return string(runes[:RecallPrefixLen])
}

// Quizzable filters entries to those taggable into quiz questions.
// The result is a fresh slice; the input is never modified.
func Quizzable(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Quizzable() {
			out = append(out, e)
		}
	}
	return out
}
