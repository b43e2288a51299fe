package memorylog

import (
	"testing"
	"time"
)

func TestMonthYear(t *testing.T) {
	e := Entry{CreatedAt: time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)}
	if got := e.MonthYear(); got != "August 2026" {
		t.Errorf("MonthYear() = %q, want August 2026", got)
	}
}

func TestRecallPrefix(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short text untouched", "A day at the beach", "A day at the beach"},
		{"whitespace trimmed", "  tea together  ", "tea together"},
		{"empty", "", ""},
		{
			"long text cut to sixty",
			"0123456789012345678901234567890123456789012345678901234567890123456789",
			"012345678901234567890123456789012345678901234567890123456789",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Text: tt.text}
			if got := e.RecallPrefix(); got != tt.want {
				t.Errorf("RecallPrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecallPrefix_MultiByteSafe(t *testing.T) {
	text := ""
	for i := 0; i < 70; i++ {
		text += "ā"
	}
	e := Entry{Text: text}
	prefix := e.RecallPrefix()
	if got := len([]rune(prefix)); got != RecallPrefixLen {
		t.Errorf("prefix runes = %d, want %d", got, RecallPrefixLen)
	}
}

func TestQuizzable(t *testing.T) {
	entries := []Entry{
		{ID: "m1", PersonName: "Alice"},
		{ID: "m2"},
		{ID: "m3", PersonName: "Bob"},
	}

	got := Quizzable(entries)

	if len(got) != 2 {
		t.Fatalf("quizzable = %d, want 2", len(got))
	}
	if got[0].ID != "m1" || got[1].ID != "m3" {
		t.Errorf("quizzable = [%s %s], want [m1 m3]", got[0].ID, got[1].ID)
	}
}
