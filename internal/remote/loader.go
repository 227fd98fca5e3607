// Package remote holds remotely fetched page data. A Loader tracks one value keyed by
// the query that produced it; every Load starts a new generation and results from
// older generations are discarded, so the displayed data always matches the most
// recent query.
package remote

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/college-portal/pkg/errors"
)

// DefaultFlashDuration is how long a success notice stays visible.
const DefaultFlashDuration = 3 * time.Second

// Fetcher retrieves the value for query q.
type Fetcher[Q, T any] func(ctx context.Context, q Q) (T, error)

// StaleObserver is told about every discarded out-of-order result.
type StaleObserver interface {
	ObserveStale(resource string)
}

// Options configures a Loader.
type Options struct {
	Name          string
	Logger        *zap.Logger
	Stale         StaleObserver
	FlashDuration time.Duration
	Now           func() time.Time
}

// State is a snapshot of a Loader.
type State[Q, T any] struct {
	Query      Q         `json:"query"`
	Data       T         `json:"data"`
	Loading    bool      `json:"loading"`
	Err        string    `json:"error,omitempty"`
	ActionErr  string    `json:"action_error,omitempty"`
	Notice     string    `json:"notice,omitempty"`
	Submitting bool      `json:"submitting"`
	Generation uint64    `json:"generation"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// Loader is safe for concurrent use.
type Loader[Q, T any] struct {
	name      string
	fetch     Fetcher[Q, T]
	normalize func(T) T
	logger    *zap.Logger
	stale     StaleObserver
	flash     time.Duration
	now       func() time.Time

	mu          sync.Mutex
	generation  uint64
	cancel      context.CancelFunc
	query       Q
	data        T
	loading     bool
	err         string
	actionErr   string
	notice      string
	noticeUntil time.Time
	submitting  bool
	fetchedAt   time.Time
}

// NewLoader builds a Loader around fetch.
func NewLoader[Q, T any](fetch Fetcher[Q, T], opts Options) *Loader[Q, T] {
	if opts.Name == "" {
		opts.Name = "remote"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.FlashDuration <= 0 {
		opts.FlashDuration = DefaultFlashDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Loader[Q, T]{
		name:   opts.Name,
		fetch:  fetch,
		logger: opts.Logger,
		stale:  opts.Stale,
		flash:  opts.FlashDuration,
		now:    opts.Now,
	}
}

// Load fetches q, superseding any load still in flight. A superseded call returns
// ErrSuperseded and leaves the state untouched.
func (l *Loader[Q, T]) Load(ctx context.Context, q Q) (T, error) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	gen := l.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.query = q
	l.loading = true
	l.mu.Unlock()

	data, err := l.fetch(fetchCtx, q)

	l.mu.Lock()
	defer l.mu.Unlock()
	cancel()

	var zero T
	if gen != l.generation {
		l.logger.Sugar().Debugw("discarding superseded result", "loader", l.name, "generation", gen, "latest", l.generation)
		if l.stale != nil {
			l.stale.ObserveStale(l.name)
		}
		return zero, appErrors.ErrSuperseded
	}

	l.cancel = nil
	l.loading = false
	if err != nil {
		l.logger.Sugar().Warnw("load failed", "loader", l.name, "error", err)
		l.data = l.normalized(zero)
		l.err = appErrors.Message(err)
		return l.data, err
	}

	l.data = l.normalized(data)
	l.err = ""
	l.fetchedAt = l.now()
	return l.data, nil
}

// Reload repeats the most recent query.
func (l *Loader[Q, T]) Reload(ctx context.Context) (T, error) {
	l.mu.Lock()
	q := l.query
	l.mu.Unlock()
	return l.Load(ctx, q)
}

// Mutate runs op as a user action: concurrent submits are rejected with ErrBusy, a
// success notice is flashed and the data is reloaded whether or not op succeeded.
func (l *Loader[Q, T]) Mutate(ctx context.Context, successMsg string, op func(context.Context) error) error {
	l.mu.Lock()
	if l.submitting {
		l.mu.Unlock()
		return appErrors.ErrBusy
	}
	l.submitting = true
	l.actionErr = ""
	l.notice = ""
	l.mu.Unlock()

	err := op(ctx)

	l.mu.Lock()
	l.submitting = false
	if err != nil {
		l.logger.Sugar().Warnw("action failed", "loader", l.name, "error", err)
		l.actionErr = appErrors.Message(err)
	} else if successMsg != "" {
		l.notice = successMsg
		l.noticeUntil = l.now().Add(l.flash)
	}
	l.mu.Unlock()

	if _, reloadErr := l.Reload(ctx); reloadErr != nil && err == nil {
		l.logger.Sugar().Debugw("reload after action failed", "loader", l.name, "error", reloadErr)
	}
	return err
}

// MutateConfirmed asks c before running Mutate. Declining returns ErrNotConfirmed
// without calling op.
func (l *Loader[Q, T]) MutateConfirmed(ctx context.Context, c Confirmer, prompt, successMsg string, op func(context.Context) error) error {
	if err := Confirm(ctx, c, prompt); err != nil {
		return err
	}
	return l.Mutate(ctx, successMsg, op)
}

// State returns a snapshot. Expired notices are dropped.
func (l *Loader[Q, T]) State() State[Q, T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.notice != "" && !l.now().Before(l.noticeUntil) {
		l.notice = ""
	}
	return State[Q, T]{
		Query:      l.query,
		Data:       l.data,
		Loading:    l.loading,
		Err:        l.err,
		ActionErr:  l.actionErr,
		Notice:     l.notice,
		Submitting: l.submitting,
		Generation: l.generation,
		FetchedAt:  l.fetchedAt,
	}
}

// Data returns the current value.
func (l *Loader[Q, T]) Data() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data
}

// Close cancels any load in flight.
func (l *Loader[Q, T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *Loader[Q, T]) normalized(v T) T {
	if l.normalize == nil {
		return v
	}
	return l.normalize(v)
}
