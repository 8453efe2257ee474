// Package textwave provides a Go client for the TextWave
// natural-language-processing REST API.
//
// Synchronous operations (sentiment, classification, keywords, tagging,
// named entities, dependency parsing, summarization, suggestion, time
// normalization) map one-to-one onto API endpoints:
//
//	client, _ := textwave.New(os.Getenv("TEXTWAVE_TOKEN"))
//	scores, _ := client.Sentiment(ctx, []string{"great product"}, "general")
//	words, _ := client.Keywords(ctx, "viral media sites spread news fast", 5, false)
//
// Text clustering and representative-opinion extraction are
// asynchronous server-side tasks. The client uploads documents in
// batches, starts the analysis, polls with adaptive backoff and fetches
// the result:
//
//	clusters, err := client.Cluster(ctx, texts,
//	    textwave.WithTimeout(2*time.Minute),
//	)
//
// Deterministic analysis responses can be cached in Redis or Valkey via
// WithRedisCache. Structured logging and prometheus metrics are opt-in
// through WithLogger and WithPrometheus.
package textwave
