package domain

import (
	"encoding/json"
	"fmt"
)

// TextCluster is one group in a clustering result.
type TextCluster struct {
	ID        int      `json:"_id"`
	Documents []string `json:"list"`
	Num       int      `json:"num"`
}

// CommentsCluster is one group in a representative-opinion result.
type CommentsCluster struct {
	ID       int              `json:"_id"`
	Opinion  string           `json:"opinion"`
	Comments []OpinionComment `json:"list"`
	Num      int              `json:"num"`
}

// OpinionComment is a [text, count] pair on the wire.
type OpinionComment struct {
	Text  string
	Count int
}

// UnmarshalJSON decodes the two-element array form.
func (c *OpinionComment) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("opinion comment pair: %w", err)
	}
	if err := json.Unmarshal(pair[0], &c.Text); err != nil {
		return fmt.Errorf("opinion comment text: %w", err)
	}
	if err := json.Unmarshal(pair[1], &c.Count); err != nil {
		return fmt.Errorf("opinion comment count: %w", err)
	}
	return nil
}

// MarshalJSON emits the two-element array form so re-encoded values stay
// decodable.
func (c OpinionComment) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{c.Text, c.Count})
}

// SentimentScore is a [positive, negative] probability pair on the wire.
type SentimentScore struct {
	Positive float64
	Negative float64
}

// UnmarshalJSON decodes the two-element array form.
func (s *SentimentScore) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("sentiment pair: %w", err)
	}
	s.Positive = pair[0]
	s.Negative = pair[1]
	return nil
}

// MarshalJSON emits the two-element array form so re-encoded values stay
// decodable.
func (s SentimentScore) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{s.Positive, s.Negative})
}

// WeightedWord is a [weight, word] pair on the wire, shared by the
// keyword extraction and semantic suggestion endpoints.
type WeightedWord struct {
	Weight float64
	Word   string
}

// UnmarshalJSON decodes the two-element array form.
func (w *WeightedWord) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("weighted word pair: %w", err)
	}
	if err := json.Unmarshal(pair[0], &w.Weight); err != nil {
		return fmt.Errorf("weighted word weight: %w", err)
	}
	if err := json.Unmarshal(pair[1], &w.Word); err != nil {
		return fmt.Errorf("weighted word word: %w", err)
	}
	return nil
}

// MarshalJSON emits the two-element array form so re-encoded values stay
// decodable.
func (w WeightedWord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{w.Weight, w.Word})
}

// Tagging holds word segmentation with part-of-speech tags for one text.
type Tagging struct {
	Words []string `json:"word"`
	Tags  []string `json:"tag"`
}

// EntityMention is a [start, end, tag] triple indexing into the word list.
type EntityMention struct {
	Start int
	End   int
	Tag   string
}

// UnmarshalJSON decodes the three-element array form.
func (m *EntityMention) UnmarshalJSON(data []byte) error {
	var triple [3]json.RawMessage
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("entity mention triple: %w", err)
	}
	if err := json.Unmarshal(triple[0], &m.Start); err != nil {
		return fmt.Errorf("entity mention start: %w", err)
	}
	if err := json.Unmarshal(triple[1], &m.End); err != nil {
		return fmt.Errorf("entity mention end: %w", err)
	}
	if err := json.Unmarshal(triple[2], &m.Tag); err != nil {
		return fmt.Errorf("entity mention tag: %w", err)
	}
	return nil
}

// MarshalJSON emits the three-element array form so re-encoded values stay
// decodable.
func (m EntityMention) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{m.Start, m.End, m.Tag})
}

// NamedEntity holds entity mentions over segmented words for one text.
type NamedEntity struct {
	Entities []EntityMention `json:"entity"`
	Tags     []string        `json:"tag"`
	Words    []string        `json:"word"`
}

// Dependency holds a dependency parse for one text.
type Dependency struct {
	Heads []int    `json:"head"`
	Roles []string `json:"role"`
	Tags  []string `json:"tag"`
	Words []string `json:"word"`
}

// TimeResult is a normalized time expression. Timestamp is set for point
// results, Timespan for interval results; Type says which.
type TimeResult struct {
	Timestamp string   `json:"timestamp"`
	Timespan  []string `json:"timespan"`
	Type      string   `json:"type"`
}
