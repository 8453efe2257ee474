package textwave

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/textwave/textwave-go/internal/domain"
	"github.com/textwave/textwave-go/internal/task"
)

// Default clustering parameters: alpha bounds the maximum cluster size
// fraction, beta the average.
const (
	DefaultAlpha = 0.8
	DefaultBeta  = 0.45
)

// TaskOption configures an asynchronous clustering workflow.
type TaskOption interface {
	applyTask(*taskConfig)
}

type taskOptionFunc func(*taskConfig)

func (f taskOptionFunc) applyTask(c *taskConfig) { f(c) }

type taskConfig struct {
	taskID  string
	alpha   float64
	beta    float64
	timeout time.Duration
}

func newTaskConfig(opts []TaskOption) *taskConfig {
	cfg := &taskConfig{alpha: DefaultAlpha, beta: DefaultBeta}
	for _, o := range opts {
		o.applyTask(cfg)
	}
	return cfg
}

// id returns the caller-supplied task identifier or generates a fresh one.
func (c *taskConfig) id() string {
	if c.taskID != "" {
		return c.taskID
	}
	return uuid.NewString()
}

// WithTaskID pins the server-side task identifier instead of generating
// a random one.
func WithTaskID(id string) TaskOption {
	return taskOptionFunc(func(c *taskConfig) {
		c.taskID = id
	})
}

// WithAlpha sets the maximum cluster size fraction. Default: 0.8.
func WithAlpha(alpha float64) TaskOption {
	return taskOptionFunc(func(c *taskConfig) {
		c.alpha = alpha
	})
}

// WithBeta sets the average cluster size fraction. Default: 0.45.
func WithBeta(beta float64) TaskOption {
	return taskOptionFunc(func(c *taskConfig) {
		c.beta = beta
	})
}

// WithTimeout bounds the polling phase. Zero (the default) polls until
// the task completes or ctx is cancelled.
func WithTimeout(timeout time.Duration) TaskOption {
	return taskOptionFunc(func(c *taskConfig) {
		c.timeout = timeout
	})
}

// Cluster groups texts into clusters of similar documents. It uploads
// the texts, starts the server-side analysis, polls until completion
// and clears the server state. Empty input returns an empty result with
// no network calls. On failure before the result is fetched, server
// state is left uncleared; retry with a fresh task identifier.
func (c *Client) Cluster(ctx context.Context, texts []string, opts ...TaskOption) (res []TextCluster, err error) {
	start := time.Now()
	defer func() { c.obs.observe("cluster", start, err) }()

	cfg := newTaskConfig(opts)
	t := task.NewCluster(c.api, cfg.id(), c.logger)

	var out []domain.TextCluster
	ok, err := c.runTask(ctx, t, texts, cfg, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []TextCluster{}, nil
	}
	return fromTextClusters(out), nil
}

// Comments extracts representative opinions from texts. Same lifecycle
// and failure behavior as Cluster.
func (c *Client) Comments(ctx context.Context, texts []string, opts ...TaskOption) (res []CommentsCluster, err error) {
	start := time.Now()
	defer func() { c.obs.observe("comments", start, err) }()

	cfg := newTaskConfig(opts)
	t := task.NewComments(c.api, cfg.id(), c.logger)

	var out []domain.CommentsCluster
	ok, err := c.runTask(ctx, t, texts, cfg, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []CommentsCluster{}, nil
	}
	return fromCommentsClusters(out), nil
}

// runTask drives a task handle through push, analysis, wait, result and
// clear. Returns false when there was nothing to push. The first
// failure propagates and clear is skipped.
func (c *Client) runTask(ctx context.Context, t *task.Handle, texts []string, cfg *taskConfig, out any) (bool, error) {
	pushed, err := t.Push(ctx, domain.NewDocuments(texts))
	if err != nil {
		return false, err
	}
	if !pushed {
		return false, nil
	}
	if err := t.Analysis(ctx, cfg.alpha, cfg.beta); err != nil {
		return false, err
	}
	if err := t.Wait(ctx, cfg.timeout); err != nil {
		return false, err
	}
	if err := t.Result(ctx, out); err != nil {
		return false, err
	}
	if err := t.Clear(ctx); err != nil {
		return false, err
	}
	return true, nil
}
