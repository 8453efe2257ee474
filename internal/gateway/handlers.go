package gateway

import (
	"encoding/json"
	"net/http"
	"time"

	textwave "github.com/textwave/textwave-go"
)

func decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts []string `json:"texts"`
		Model string   `json:"model"`
	}
	if !decode(w, r, &req) {
		return
	}
	scores, err := s.nlp.Sentiment(r.Context(), req.Texts, req.Model)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts []string `json:"texts"`
	}
	if !decode(w, r, &req) {
		return
	}
	categories, err := s.nlp.Classify(r.Context(), req.Texts)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word string `json:"word"`
		TopK int    `json:"top_k"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Word == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "word is required")
		return
	}
	if req.TopK <= 0 {
		req.TopK = 10
	}
	words, err := s.nlp.Suggest(r.Context(), req.Word, req.TopK)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, words)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text      string `json:"text"`
		TopK      int    `json:"top_k"`
		Segmented bool   `json:"segmented"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "text is required")
		return
	}
	if req.TopK <= 0 {
		req.TopK = 10
	}
	words, err := s.nlp.Keywords(r.Context(), req.Text, req.TopK, req.Segmented)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, words)
}

func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts           []string `json:"texts"`
		SpaceMode       int      `json:"space_mode"`
		OOVLevel        int      `json:"oov_level"`
		T2S             bool     `json:"t2s"`
		SpecialCharConv bool     `json:"special_char_conv"`
	}
	if !decode(w, r, &req) {
		return
	}
	opts := []textwave.TagOption{textwave.WithSpaceMode(req.SpaceMode)}
	if req.OOVLevel > 0 {
		opts = append(opts, textwave.WithOOVLevel(req.OOVLevel))
	}
	if req.T2S {
		opts = append(opts, textwave.WithT2S())
	}
	if req.SpecialCharConv {
		opts = append(opts, textwave.WithSpecialCharConv())
	}
	taggings, err := s.nlp.Tag(r.Context(), req.Texts, opts...)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taggings)
}

func (s *Server) handleNER(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts       []string `json:"texts"`
		Sensitivity int      `json:"sensitivity"`
		Segmented   bool     `json:"segmented"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Sensitivity <= 0 {
		req.Sensitivity = 3
	}
	entities, err := s.nlp.NER(r.Context(), req.Texts, req.Sensitivity, req.Segmented)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities)
}

func (s *Server) handleDepparser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts []string `json:"texts"`
	}
	if !decode(w, r, &req) {
		return
	}
	parses, err := s.nlp.Depparser(r.Context(), req.Texts)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, parses)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title      string  `json:"title"`
		Content    string  `json:"content"`
		Percentage float64 `json:"percentage"`
		NotExceed  bool    `json:"not_exceed"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "content is required")
		return
	}
	if req.Percentage <= 0 {
		req.Percentage = 0.3
	}
	summary, err := s.nlp.Summary(r.Context(), req.Title, req.Content, req.Percentage, req.NotExceed)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleTime(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pattern  string `json:"pattern"`
		Basetime int64  `json:"basetime"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Pattern == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "pattern is required")
		return
	}
	var basetime time.Time
	if req.Basetime > 0 {
		basetime = time.Unix(req.Basetime, 0)
	}
	result, err := s.nlp.ConvertTime(r.Context(), req.Pattern, basetime)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// taskRequest is shared by the cluster and comments endpoints.
type taskRequest struct {
	Texts      []string `json:"texts"`
	TaskID     string   `json:"task_id"`
	Alpha      float64  `json:"alpha"`
	Beta       float64  `json:"beta"`
	TimeoutSec int      `json:"timeout_sec"`
}

func (t *taskRequest) options() []textwave.TaskOption {
	var opts []textwave.TaskOption
	if t.TaskID != "" {
		opts = append(opts, textwave.WithTaskID(t.TaskID))
	}
	if t.Alpha > 0 {
		opts = append(opts, textwave.WithAlpha(t.Alpha))
	}
	if t.Beta > 0 {
		opts = append(opts, textwave.WithBeta(t.Beta))
	}
	if t.TimeoutSec > 0 {
		opts = append(opts, textwave.WithTimeout(time.Duration(t.TimeoutSec)*time.Second))
	}
	return opts
}

func (s *Server) handleCluster(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !decode(w, r, &req) {
		return
	}
	clusters, err := s.nlp.Cluster(r.Context(), req.Texts, req.options()...)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clusters)
}

func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !decode(w, r, &req) {
		return
	}
	clusters, err := s.nlp.Comments(r.Context(), req.Texts, req.options()...)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clusters)
}
