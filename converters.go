package textwave

import "github.com/textwave/textwave-go/internal/domain"

func fromSentimentScores(in []domain.SentimentScore) []SentimentScore {
	out := make([]SentimentScore, len(in))
	for i, s := range in {
		out[i] = SentimentScore{Positive: s.Positive, Negative: s.Negative}
	}
	return out
}

func fromWeightedWords(in []domain.WeightedWord) []WeightedWord {
	out := make([]WeightedWord, len(in))
	for i, w := range in {
		out[i] = WeightedWord{Weight: w.Weight, Word: w.Word}
	}
	return out
}

func fromTaggings(in []domain.Tagging) []Tagging {
	out := make([]Tagging, len(in))
	for i, t := range in {
		out[i] = Tagging{Words: t.Words, Tags: t.Tags}
	}
	return out
}

func fromNamedEntities(in []domain.NamedEntity) []NamedEntity {
	out := make([]NamedEntity, len(in))
	for i, n := range in {
		mentions := make([]EntityMention, len(n.Entities))
		for j, m := range n.Entities {
			mentions[j] = EntityMention{Start: m.Start, End: m.End, Tag: m.Tag}
		}
		out[i] = NamedEntity{Entities: mentions, Tags: n.Tags, Words: n.Words}
	}
	return out
}

func fromDependencies(in []domain.Dependency) []Dependency {
	out := make([]Dependency, len(in))
	for i, d := range in {
		out[i] = Dependency{Heads: d.Heads, Roles: d.Roles, Tags: d.Tags, Words: d.Words}
	}
	return out
}

func fromTextClusters(in []domain.TextCluster) []TextCluster {
	out := make([]TextCluster, len(in))
	for i, c := range in {
		out[i] = TextCluster{ID: c.ID, Documents: c.Documents, Size: c.Num}
	}
	return out
}

func fromCommentsClusters(in []domain.CommentsCluster) []CommentsCluster {
	out := make([]CommentsCluster, len(in))
	for i, c := range in {
		comments := make([]OpinionComment, len(c.Comments))
		for j, oc := range c.Comments {
			comments[j] = OpinionComment{Text: oc.Text, Count: oc.Count}
		}
		out[i] = CommentsCluster{ID: c.ID, Opinion: c.Opinion, Comments: comments, Size: c.Num}
	}
	return out
}
