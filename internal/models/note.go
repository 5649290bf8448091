package models

// NoteCategory classifies a learning note
type NoteCategory string

const (
	NoteChallenge  NoteCategory = "challenge"
	NoteMistake    NoteCategory = "mistake"
	NoteReflection NoteCategory = "reflection"
)

// Note is one learning-notes entry. Date is an RFC3339 timestamp
// assigned at creation.
type Note struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Date     string       `json:"date"`
	Category NoteCategory `json:"category"`
}
