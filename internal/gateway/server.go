// Package gateway exposes the TextWave SDK over HTTP as a caching
// proxy, so internal services can call the API without holding the
// vendor token.
package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	textwave "github.com/textwave/textwave-go"
)

// nlp is the consumer interface over the SDK client, narrowed for
// substitution in tests.
type nlp interface {
	Ping(ctx context.Context) error
	Sentiment(ctx context.Context, texts []string, model string) ([]textwave.SentimentScore, error)
	Classify(ctx context.Context, texts []string) ([]int, error)
	Suggest(ctx context.Context, word string, topK int) ([]textwave.WeightedWord, error)
	Keywords(ctx context.Context, text string, topK int, segmented bool) ([]textwave.WeightedWord, error)
	Tag(ctx context.Context, texts []string, opts ...textwave.TagOption) ([]textwave.Tagging, error)
	NER(ctx context.Context, texts []string, sensitivity int, segmented bool) ([]textwave.NamedEntity, error)
	Depparser(ctx context.Context, texts []string) ([]textwave.Dependency, error)
	Summary(ctx context.Context, title, content string, percentage float64, notExceed bool) (string, error)
	ConvertTime(ctx context.Context, pattern string, basetime time.Time) (textwave.TimeResult, error)
	Cluster(ctx context.Context, texts []string, opts ...textwave.TaskOption) ([]textwave.TextCluster, error)
	Comments(ctx context.Context, texts []string, opts ...textwave.TaskOption) ([]textwave.CommentsCluster, error)
}

// Server holds the gateway HTTP handlers.
type Server struct {
	nlp    nlp
	logger *zap.Logger
}

// NewServer creates a gateway server around an SDK client.
func NewServer(client nlp, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{nlp: client, logger: logger}
}

// Register mounts the gateway routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/sentiment", s.handleSentiment)
		r.Post("/classify", s.handleClassify)
		r.Post("/suggest", s.handleSuggest)
		r.Post("/keywords", s.handleKeywords)
		r.Post("/tag", s.handleTag)
		r.Post("/ner", s.handleNER)
		r.Post("/depparser", s.handleDepparser)
		r.Post("/summary", s.handleSummary)
		r.Post("/time", s.handleTime)
		r.Post("/cluster", s.handleCluster)
		r.Post("/comments", s.handleComments)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.nlp.Ping(r.Context()); err != nil {
		s.logger.Warn("cache store unreachable", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
