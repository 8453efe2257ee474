// Package task implements the asynchronous task protocol shared by the
// clustering and representative-opinion workflows: batched upload,
// analysis trigger, status polling with adaptive backoff, result
// retrieval and server-side cleanup.
package task

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/textwave/textwave-go/internal/domain"
)

// ChunkSize is the maximum number of documents per upload call.
const ChunkSize = 100

const (
	// maxPollInterval caps the backoff between status checks.
	maxPollInterval = 64 * time.Second
	// basePollInterval is the interval the backoff starts from once it
	// leaves the initial zero (the first checks are immediate).
	basePollInterval = time.Second
)

// transport is the consumer interface for the HTTP layer.
type transport interface {
	Get(ctx context.Context, endpoint string, params url.Values, out any) error
	Post(ctx context.Context, endpoint string, params url.Values, body, out any) error
}

// pushResp is the server acknowledgment of an upload chunk.
type pushResp struct {
	TaskID string `json:"task_id"`
	Count  int    `json:"count"`
}

// statusResp is the server view of a task.
type statusResp struct {
	ID     string `json:"_id"`
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Handle drives one server-side task. The clustering and comments
// workflows share it and differ only in namespace and result shape.
// A Handle is not reused after Clear.
type Handle struct {
	id        string
	namespace string
	api       transport
	docs      []domain.Document
	logger    *zap.Logger

	// Overridable in tests.
	sleep        func(ctx context.Context, d time.Duration) error
	baseInterval time.Duration
}

// NewCluster creates a handle bound to the text clustering namespace.
func NewCluster(api transport, id string, logger *zap.Logger) *Handle {
	return newHandle(api, "cluster", id, logger)
}

// NewComments creates a handle bound to the representative-opinion namespace.
func NewComments(api transport, id string, logger *zap.Logger) *Handle {
	return newHandle(api, "comments", id, logger)
}

func newHandle(api transport, namespace, id string, logger *zap.Logger) *Handle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handle{
		id:           id,
		namespace:    namespace,
		api:          api,
		logger:       logger,
		sleep:        sleepCtx,
		baseInterval: basePollInterval,
	}
}

// ID returns the task identifier.
func (h *Handle) ID() string { return h.id }

// Documents returns the documents pushed so far.
func (h *Handle) Documents() []domain.Document { return h.docs }

func (h *Handle) endpoint(op string) string {
	return "/" + h.namespace + "/" + op + "/" + h.id
}

// Push uploads documents in chunks of at most ChunkSize, in order.
// Each chunk must succeed before the next is sent; the first failure
// aborts and propagates. An empty batch returns false with no network
// call, signalling the caller to short-circuit the whole workflow.
func (h *Handle) Push(ctx context.Context, docs []domain.Document) (bool, error) {
	if len(docs) == 0 {
		return false, nil
	}
	endpoint := h.endpoint("push")
	for len(docs) > 0 {
		chunk := docs
		if len(chunk) > ChunkSize {
			chunk = chunk[:ChunkSize]
		}
		var resp pushResp
		if err := h.api.Post(ctx, endpoint, nil, chunk, &resp); err != nil {
			return false, fmt.Errorf("push %s task %s: %w", h.namespace, h.id, err)
		}
		h.docs = append(h.docs, chunk...)
		h.logger.Info("pushed documents",
			zap.String("namespace", h.namespace),
			zap.String("task_id", h.id),
			zap.Int("chunk", len(chunk)),
			zap.Int("total", len(h.docs)),
		)
		docs = docs[len(chunk):]
	}
	return true, nil
}

// Analysis triggers server-side clustering. alpha bounds the maximum
// cluster size fraction, beta the average. Call exactly once, after at
// least one successful Push.
func (h *Handle) Analysis(ctx context.Context, alpha, beta float64) error {
	params := url.Values{}
	params.Set("alpha", strconv.FormatFloat(alpha, 'g', -1, 64))
	params.Set("beta", strconv.FormatFloat(beta, 'g', -1, 64))

	var resp statusResp
	if err := h.api.Get(ctx, h.endpoint("analysis"), params, &resp); err != nil {
		return fmt.Errorf("start %s analysis for task %s: %w", h.namespace, h.id, err)
	}
	h.logger.Info("analysis started",
		zap.String("namespace", h.namespace),
		zap.String("task_id", h.id),
	)
	return nil
}

// Status queries the current server-side task state.
func (h *Handle) Status(ctx context.Context) (domain.TaskStatus, error) {
	var resp statusResp
	if err := h.api.Get(ctx, h.endpoint("status"), nil, &resp); err != nil {
		return 0, fmt.Errorf("status of %s task %s: %w", h.namespace, h.id, err)
	}
	status, err := domain.ParseTaskStatus(resp.Status, h.id)
	if err != nil {
		return 0, err
	}
	h.logger.Debug("task status",
		zap.String("namespace", h.namespace),
		zap.String("task_id", h.id),
		zap.Stringer("status", status),
	)
	return status, nil
}

// Result fetches the final result set into out. Valid only after Status
// reported done; earlier calls yield whatever the server returns.
func (h *Handle) Result(ctx context.Context, out any) error {
	if err := h.api.Get(ctx, h.endpoint("result"), nil, out); err != nil {
		return fmt.Errorf("result of %s task %s: %w", h.namespace, h.id, err)
	}
	return nil
}

// Clear purges uploaded documents and results on the server. A response
// body that fails to parse is tolerated; transport and API failures
// still propagate.
func (h *Handle) Clear(ctx context.Context) error {
	var resp string
	if err := h.api.Get(ctx, h.endpoint("clear"), nil, &resp); err != nil {
		if !errors.Is(err, domain.ErrDecode) {
			return fmt.Errorf("clear %s task %s: %w", h.namespace, h.id, err)
		}
	}
	h.logger.Info("task cleared",
		zap.String("namespace", h.namespace),
		zap.String("task_id", h.id),
	)
	return nil
}

// Wait polls Status until it reports done. The first check is
// immediate; every third iteration the poll interval doubles (rising
// from zero to one second on the first doubling) up to a 64 second cap.
// A timeout of zero means no time bound. Timeout is only evaluated at
// check boundaries, never mid-sleep. A server-reported error status is
// not terminal: polling continues until done, not-found or timeout.
// Cancelling ctx aborts the wait.
func (h *Handle) Wait(ctx context.Context, timeout time.Duration) error {
	var elapsed, interval time.Duration
	for i := 0; ; {
		if err := h.sleep(ctx, interval); err != nil {
			return err
		}
		status, err := h.Status(ctx)
		if err != nil {
			return err
		}
		if status == domain.StatusDone {
			return nil
		}
		elapsed += interval
		if timeout > 0 && elapsed >= timeout {
			return &domain.TimeoutError{TaskID: h.id, Timeout: timeout}
		}
		i++
		if i%3 == 0 && interval < maxPollInterval {
			if interval == 0 {
				interval = h.baseInterval
			} else {
				interval *= 2
			}
			if interval > maxPollInterval {
				interval = maxPollInterval
			}
		}
	}
}

// sleepCtx sleeps for d or until ctx is cancelled. A non-positive d
// returns immediately.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("wait cancelled: %w", err)
		}
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("wait cancelled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
