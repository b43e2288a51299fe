package profile

import "testing"

func TestNamed(t *testing.T) {
	people := []Person{
		{ID: "p1", Name: "Alice"},
		{ID: "p2"},
		{ID: "p3", Name: "Bob"},
	}

	named := Named(people)

	if len(named) != 2 {
		t.Fatalf("named = %d, want 2", len(named))
	}
	if named[0].Name != "Alice" || named[1].Name != "Bob" {
		t.Errorf("named = [%s %s], want [Alice Bob]", named[0].Name, named[1].Name)
	}

	// The filter must hand back a fresh slice.
	named[0].Name = "Zelda"
	if people[0].Name != "Alice" {
		t.Error("filter result aliases the input")
	}
}

func TestNames(t *testing.T) {
	people := []Person{
		{ID: "p1", Name: "Alice"},
		{ID: "p2"},
		{ID: "p3", Name: "Bob"},
	}

	names := Names(people)

	if len(names) != 2 || names[0] != "Alice" || names[1] != "Bob" {
		t.Errorf("names = %v, want [Alice Bob]", names)
	}
}
