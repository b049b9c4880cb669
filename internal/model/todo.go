package model

// Todo is the domain record for a single entry.
// Entries are never edited in place; a change produces a new value.
type Todo struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Toggled returns a copy of t with Done inverted.
func (t Todo) Toggled() Todo {
	t.Done = !t.Done
	return t
}
