package textwave

// SentimentScore holds positive and negative sentiment probabilities
// for one text.
type SentimentScore struct {
	Positive float64
	Negative float64
}

// WeightedWord is a word with its relevance weight, returned by the
// keyword extraction and semantic suggestion endpoints.
type WeightedWord struct {
	Weight float64
	Word   string
}

// Tagging holds word segmentation with part-of-speech tags for one text.
// Words and Tags are parallel slices.
type Tagging struct {
	Words []string
	Tags  []string
}

// EntityMention locates one named entity: [Start, End) indexes into the
// segmented word list, Tag is the entity type.
type EntityMention struct {
	Start int
	End   int
	Tag   string
}

// NamedEntity holds named-entity recognition output for one text.
type NamedEntity struct {
	Entities []EntityMention
	Tags     []string
	Words    []string
}

// Dependency holds a dependency parse for one text. Heads[i] is the
// index of word i's head (-1 for the root); Heads, Roles, Tags and
// Words are parallel slices.
type Dependency struct {
	Heads []int
	Roles []string
	Tags  []string
	Words []string
}

// TimeResult is a normalized time expression. Point results set
// Timestamp, interval results set Timespan; Type says which
// ("timestamp" or "timespan").
type TimeResult struct {
	Timestamp string
	Timespan  []string
	Type      string
}

// TextCluster is one group of a completed clustering task: the ids of
// its member documents and their count.
type TextCluster struct {
	ID        int
	Documents []string
	Size      int
}

// CommentsCluster is one group of a completed representative-opinion
// task: the representative opinion text and the grouped comments.
type CommentsCluster struct {
	ID       int
	Opinion  string
	Comments []OpinionComment
	Size     int
}

// OpinionComment is one comment grouped under a representative opinion.
type OpinionComment struct {
	Text  string
	Count int
}
