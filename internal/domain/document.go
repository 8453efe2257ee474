package domain

import "strconv"

// Document is a single text submitted to a clustering task.
// Comparable by (ID, Text); immutable once constructed.
type Document struct {
	ID   string `json:"_id"`
	Text string `json:"text"`
}

// NewDocuments converts raw texts into documents with auto-assigned
// decimal identifiers ("0", "1", ...).
func NewDocuments(texts []string) []Document {
	docs := make([]Document, len(texts))
	for i, t := range texts {
		docs[i] = Document{ID: strconv.Itoa(i), Text: t}
	}
	return docs
}
