package domain

import (
	"encoding/json"
	"testing"
)

func TestSentimentScoreUnmarshal(t *testing.T) {
	var s SentimentScore
	if err := json.Unmarshal([]byte(`[0.92, 0.08]`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Positive != 0.92 || s.Negative != 0.08 {
		t.Errorf("score = %+v, want {0.92 0.08}", s)
	}

	if err := json.Unmarshal([]byte(`{"pos": 1}`), &s); err == nil {
		t.Error("expected error for object form")
	}
}

func TestWeightedWordUnmarshal(t *testing.T) {
	var w WeightedWord
	if err := json.Unmarshal([]byte(`[8.39, "照片"]`), &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Weight != 8.39 || w.Word != "照片" {
		t.Errorf("word = %+v, want {8.39 照片}", w)
	}

	// Swapped element types must fail, not silently zero out.
	if err := json.Unmarshal([]byte(`["照片", 8.39]`), &w); err == nil {
		t.Error("expected error for swapped pair")
	}
}

func TestOpinionCommentUnmarshal(t *testing.T) {
	var c OpinionComment
	if err := json.Unmarshal([]byte(`["位置不错", 3]`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Text != "位置不错" || c.Count != 3 {
		t.Errorf("comment = %+v, want {位置不错 3}", c)
	}
}

func TestEntityMentionUnmarshal(t *testing.T) {
	var m EntityMention
	if err := json.Unmarshal([]byte(`[0, 2, "product_name"]`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Start != 0 || m.End != 2 || m.Tag != "product_name" {
		t.Errorf("mention = %+v, want {0 2 product_name}", m)
	}
}

func TestCommentsClusterUnmarshal(t *testing.T) {
	raw := `{"_id": 1, "opinion": "位置不错", "list": [["位置不错", 2], ["离地铁近", 1]], "num": 3}`
	var cl CommentsCluster
	if err := json.Unmarshal([]byte(raw), &cl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cl.ID != 1 || cl.Opinion != "位置不错" || cl.Num != 3 {
		t.Errorf("cluster = %+v", cl)
	}
	if len(cl.Comments) != 2 || cl.Comments[0].Text != "位置不错" || cl.Comments[1].Count != 1 {
		t.Errorf("comments = %+v", cl.Comments)
	}
}

func TestPairTypesMarshalArrayForm(t *testing.T) {
	cases := []struct {
		name string
		val  any
		want string
	}{
		{"sentiment", SentimentScore{Positive: 0.92, Negative: 0.08}, `[0.92,0.08]`},
		{"weighted word", WeightedWord{Weight: 8.39, Word: "照片"}, `[8.39,"照片"]`},
		{"opinion comment", OpinionComment{Text: "位置不错", Count: 3}, `["位置不错",3]`},
		{"entity mention", EntityMention{Start: 0, End: 2, Tag: "product_name"}, `[0,2,"product_name"]`},
	}
	for _, tc := range cases {
		got, err := json.Marshal(tc.val)
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		if string(got) != tc.want {
			t.Errorf("%s = %s, want %s", tc.name, got, tc.want)
		}
	}
}

// Encoding a decoded response must yield JSON that decodes back, so cached
// entries stay readable.
func TestSentimentScoreRoundTrip(t *testing.T) {
	scores := []SentimentScore{{0.92, 0.08}, {0.1, 0.9}}
	data, err := json.Marshal(scores)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back []SentimentScore
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal re-encoded form: %v", err)
	}
	if len(back) != 2 || back[0] != scores[0] || back[1] != scores[1] {
		t.Errorf("round trip = %+v, want %+v", back, scores)
	}
}

func TestNewDocuments(t *testing.T) {
	docs := NewDocuments([]string{"a", "b", "c"})
	if len(docs) != 3 {
		t.Fatalf("len = %d, want 3", len(docs))
	}
	for i, want := range []string{"0", "1", "2"} {
		if docs[i].ID != want {
			t.Errorf("id[%d] = %q, want %q", i, docs[i].ID, want)
		}
	}
	if docs[1].Text != "b" {
		t.Errorf("text[1] = %q, want b", docs[1].Text)
	}

	if got := NewDocuments(nil); len(got) != 0 {
		t.Errorf("nil input: len = %d, want 0", len(got))
	}
}
