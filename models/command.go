package models

// Command is a parsed local directive such as "/quit".
type Command struct {
	// Verb is the first token after the sigil, case preserved.
	Verb string
	// Args are the remaining whitespace-separated tokens.
	Args []string
}
