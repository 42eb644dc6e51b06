package models

// Question represents one trivia question: an image asset plus the set of
// accepted answers for it. Questions are loaded once at startup and never
// mutated afterwards.
type Question struct {
	// ID is the asset reference for the question image (e.g. "tiger1.jpg")
	ID string

	// Aliases are the accepted answers, matched case-insensitively.
	// A valid question has at least one non-blank alias.
	Aliases []string

	// Year is when the vehicle entered production; used for range filtering
	Year int
}
