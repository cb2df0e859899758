package tracego

import (
	"log/slog"

	"github.com/hupe1980/tracego/blobstore"
	"github.com/hupe1980/tracego/codec"
	"github.com/hupe1980/tracego/engine"
)

type options struct {
	codec       codec.Codec
	logger      *Logger
	observer    engine.ProgressObserver
	checkStride int
	concurrency int
	snapStore   blobstore.Store
	snapName    string
}

// Option configures tracing behavior.
//
// Options exist to avoid exploding the API surface with per-concern
// function variants.
type Option func(*options)

// WithCodec configures the codec used for fill snapshots.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging for search runs.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithObserver configures a progress observer. The observer must not
// block; wrap blocking consumers in an engine.AsyncObserver.
func WithObserver(obs engine.ProgressObserver) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithCheckStride sets the number of expansion iterations between timeout
// and progress checks. Lower values tighten timeout precision at a small
// per-iteration cost.
func WithCheckStride(n int) Option {
	return func(o *options) {
		o.checkStride = n
	}
}

// WithConcurrency bounds the number of searches TraceBatch runs in
// parallel. Defaults to the number of CPUs.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithSnapshotStore configures automatic snapshot persistence: after a
// successful flood fill, the result is written to the store under the
// given name, compressed with the configured codec.
func WithSnapshotStore(store blobstore.Store, name string) Option {
	return func(o *options) {
		o.snapStore = store
		o.snapName = name
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *options) engineOptions() []func(*engine.Options) {
	var fns []func(*engine.Options)
	fns = append(fns, engine.WithLogger(o.logger.WithComponent("engine").Logger))
	if o.observer != nil {
		fns = append(fns, engine.WithObserver(o.observer))
	}
	if o.checkStride > 0 {
		fns = append(fns, engine.WithCheckStride(o.checkStride))
	}
	return fns
}
