package textwave

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/textwave/textwave-go/internal/domain"
)

// Sentiment analyzes the sentiment of each text. model selects the
// corpus the sentiment model was trained on (e.g. "general", "food",
// "news"); empty means the default model.
func (c *Client) Sentiment(ctx context.Context, texts []string, model string) (res []SentimentScore, err error) {
	start := time.Now()
	defer func() { c.obs.observe("sentiment", start, err) }()

	endpoint := "/sentiment/analysis"
	if model != "" {
		endpoint += "?" + model
	}
	var out []domain.SentimentScore
	if err = c.postCached(ctx, endpoint, nil, texts, &out); err != nil {
		return nil, err
	}
	return fromSentimentScores(out), nil
}

// Classify assigns each news text a category index.
func (c *Client) Classify(ctx context.Context, texts []string) (res []int, err error) {
	start := time.Now()
	defer func() { c.obs.observe("classify", start, err) }()

	if err = c.postCached(ctx, "/classify/analysis", nil, texts, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Suggest returns up to topK words semantically related to word,
// ordered by relevance. topK is capped server-side at 100.
func (c *Client) Suggest(ctx context.Context, word string, topK int) (res []WeightedWord, err error) {
	start := time.Now()
	defer func() { c.obs.observe("suggest", start, err) }()

	params := url.Values{}
	params.Set("top_k", strconv.Itoa(topK))
	var out []domain.WeightedWord
	if err = c.postCached(ctx, "/suggest/analysis", params, word, &out); err != nil {
		return nil, err
	}
	return fromWeightedWords(out), nil
}

// Keywords extracts up to topK weighted keywords from text. Set
// segmented when the text is already whitespace-segmented.
func (c *Client) Keywords(ctx context.Context, text string, topK int, segmented bool) (res []WeightedWord, err error) {
	start := time.Now()
	defer func() { c.obs.observe("keywords", start, err) }()

	params := url.Values{}
	params.Set("top_k", strconv.Itoa(topK))
	if segmented {
		params.Set("segmented", "1")
	}
	var out []domain.WeightedWord
	if err = c.postCached(ctx, "/keywords/analysis", params, text, &out); err != nil {
		return nil, err
	}
	return fromWeightedWords(out), nil
}

// TagOption configures word segmentation and part-of-speech tagging.
type TagOption interface {
	applyTag(*tagConfig)
}

type tagOptionFunc func(*tagConfig)

func (f tagOptionFunc) applyTag(c *tagConfig) { f(c) }

type tagConfig struct {
	spaceMode       int
	oovLevel        int
	t2s             bool
	specialCharConv bool
}

// WithSpaceMode controls whitespace handling during segmentation (0-3).
func WithSpaceMode(mode int) TagOption {
	return tagOptionFunc(func(c *tagConfig) {
		c.spaceMode = mode
	})
}

// WithOOVLevel controls out-of-vocabulary word granularity (0-4).
func WithOOVLevel(level int) TagOption {
	return tagOptionFunc(func(c *tagConfig) {
		c.oovLevel = level
	})
}

// WithT2S converts traditional characters to simplified before tagging.
func WithT2S() TagOption {
	return tagOptionFunc(func(c *tagConfig) {
		c.t2s = true
	})
}

// WithSpecialCharConv normalizes full-width characters before tagging.
func WithSpecialCharConv() TagOption {
	return tagOptionFunc(func(c *tagConfig) {
		c.specialCharConv = true
	})
}

// Tag segments each text into words with part-of-speech tags.
func (c *Client) Tag(ctx context.Context, texts []string, opts ...TagOption) (res []Tagging, err error) {
	start := time.Now()
	defer func() { c.obs.observe("tag", start, err) }()

	cfg := &tagConfig{oovLevel: 3}
	for _, o := range opts {
		o.applyTag(cfg)
	}

	params := url.Values{}
	params.Set("space_mode", strconv.Itoa(cfg.spaceMode))
	params.Set("oov_level", strconv.Itoa(cfg.oovLevel))
	if cfg.t2s {
		params.Set("t2s", "1")
	}
	if cfg.specialCharConv {
		params.Set("special_char_conv", "1")
	}

	var out []domain.Tagging
	if err = c.postCached(ctx, "/tag/analysis", params, texts, &out); err != nil {
		return nil, err
	}
	return fromTaggings(out), nil
}

// NER recognizes named entities in each text. sensitivity trades recall
// for precision (higher = more entities). Set segmented when the texts
// are already whitespace-segmented.
func (c *Client) NER(ctx context.Context, texts []string, sensitivity int, segmented bool) (res []NamedEntity, err error) {
	start := time.Now()
	defer func() { c.obs.observe("ner", start, err) }()

	params := url.Values{}
	params.Set("sensitivity", strconv.Itoa(sensitivity))
	if segmented {
		params.Set("segmented", "1")
	}
	var out []domain.NamedEntity
	if err = c.postCached(ctx, "/ner/analysis", params, texts, &out); err != nil {
		return nil, err
	}
	return fromNamedEntities(out), nil
}

// Depparser produces a dependency parse for each text.
func (c *Client) Depparser(ctx context.Context, texts []string) (res []Dependency, err error) {
	start := time.Now()
	defer func() { c.obs.observe("depparser", start, err) }()

	var out []domain.Dependency
	if err = c.postCached(ctx, "/depparser/analysis", nil, texts, &out); err != nil {
		return nil, err
	}
	return fromDependencies(out), nil
}

// summaryReq is the request body of the summarization endpoint.
type summaryReq struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Percentage float64 `json:"percentage"`
	NotExceed  int     `json:"not_exceed"`
}

// Summary produces an extractive summary of a news article. title may
// be empty. percentage limits the summary length as a fraction of the
// content (or an absolute character count when above 1); notExceed
// enforces the limit strictly.
func (c *Client) Summary(ctx context.Context, title, content string, percentage float64, notExceed bool) (res string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("summary", start, err) }()

	body := summaryReq{
		Title:      title,
		Content:    content,
		Percentage: percentage,
	}
	if notExceed {
		body.NotExceed = 1
	}
	if err = c.postCached(ctx, "/summary/analysis", nil, body, &res); err != nil {
		return "", err
	}
	return res, nil
}

// ConvertTime normalizes a natural-language time expression. A non-zero
// basetime anchors relative expressions ("next tuesday").
func (c *Client) ConvertTime(ctx context.Context, pattern string, basetime time.Time) (res TimeResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("time", start, err) }()

	params := url.Values{}
	params.Set("pattern", pattern)
	if !basetime.IsZero() {
		params.Set("basetime", strconv.FormatInt(basetime.Unix(), 10))
	}
	var out domain.TimeResult
	if err = c.postCached(ctx, "/time/analysis", params, nil, &out); err != nil {
		return TimeResult{}, err
	}
	return TimeResult(out), nil
}
