package scene

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/liftlobby/internal/logger"
)

// Loader loads a model in the background. The frame loop polls Ready
// every frame; startup code may block in Wait instead.
type Loader struct {
	path  string
	done  chan struct{}
	model *Model
	err   error
}

// Load starts loading the layout at path (empty for the built-in lobby).
// Cancelling ctx abandons the load.
func Load(ctx context.Context, path string) *Loader {
	l := &Loader{
		path: path,
		done: make(chan struct{}),
	}
	go l.run(ctx)
	return l
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.done)

	start := time.Now()
	layout, err := LoadLayout(l.path)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		l.err = err
		logger.Error("model load failed", zap.String("path", l.path), zap.Error(err))
		return
	}

	l.model = NewModel(layout)
	logger.Info("model loaded",
		zap.String("name", l.model.Name),
		zap.Int("objects", len(l.model.Objects())),
		zap.Int("presets", len(l.model.Presets())),
		zap.Duration("took", time.Since(start)),
	)
}

// Ready reports whether loading finished, without blocking.
func (l *Loader) Ready() (*Model, bool, error) {
	select {
	case <-l.done:
		return l.model, true, l.err
	default:
		return nil, false, nil
	}
}

// Wait blocks until the model is loaded or ctx is done.
func (l *Loader) Wait(ctx context.Context) (*Model, error) {
	select {
	case <-l.done:
		return l.model, l.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
