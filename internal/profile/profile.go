package profile

// Person is a caregiver-entered profile of someone the user should
// recognize. All fields except ID may be empty; empty means "not provided".
type Person struct {
	// ID is the opaque row identifier.
	ID string

	// Name is the person's display name. A person with an empty name is
	// never used as a quiz subject.
	Name string

	// Relationship describes the person's relationship to the user,
	// e.g. "Daughter", "Neighbour".
	Relationship string

	// Location is where the person lives.
	Location string

	// FunFact is a short caregiver-entered fact about the person.
	FunFact string

	// PhotoRef is an opaque handle to an externally stored photo.
	// Empty when no photo was captured.
	PhotoRef string
}

// HasName reports whether the person can be used as a quiz subject.
func (p Person) HasName() bool {
	return p.Name != ""
}

// Named filters people to those usable as quiz subjects. The result is a
// fresh slice; the input is never modified.
func Named(people []Person) []Person {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if p.HasName() {
			out = append(out, p)
		}
	}
	return out
}

// Names returns the names of all named people, in input order.
func Names(people []Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		if p.HasName() {
			out = append(out, p.Name)
		}
	}
	return out
}
