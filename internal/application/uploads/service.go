package uploads

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deuslabs/pitchboard/internal/application"
	domain "github.com/deuslabs/pitchboard/internal/domain/uploads"
	"github.com/deuslabs/pitchboard/internal/platform/logger"
)

// Pipeline drives one file selection through
// Idle -> Validating -> Uploading -> {Succeeded, FallbackSucceeded, Failed}.
//
// Each Upload call is tagged with a monotonically increasing token; a
// completion only publishes its result when its token is still the
// latest, so re-selecting a file mid-upload discards the stale outcome.
type Pipeline struct {
	Store         domain.ObjectStore // nil means remote storage is not configured
	Clock         application.Clock
	Log           *logger.Logger
	FallbackDelay time.Duration

	mu     sync.Mutex
	seq    uint64
	status domain.Status
	key    string
}

func NewPipeline(store domain.ObjectStore, clock application.Clock, log *logger.Logger) *Pipeline {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Pipeline{
		Store:  store,
		Clock:  clock,
		Log:    log,
		status: domain.StatusIdle,
	}
}

// Status returns the published pipeline state.
func (p *Pipeline) Status() domain.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Key returns the published file key, empty until an upload resolves.
func (p *Pipeline) Key() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.key
}

// Reset returns the pipeline to Idle and invalidates in-flight uploads.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.status = domain.StatusIdle
	p.key = ""
}

// Upload validates and uploads the file, falling back to a synthesized
// local key on any remote failure. Only a validation failure is
// terminal: every file that passes validation resolves to a non-empty
// key.
func (p *Pipeline) Upload(ctx context.Context, f domain.File) (string, error) {
	token := p.begin()

	if err := domain.Validate(f); err != nil {
		p.publish(token, domain.StatusFailed, "")
		return "", err
	}
	p.publish(token, domain.StatusUploading, "")

	if p.Store != nil {
		res := p.Store.Upload(ctx, f, "")
		if res.Success {
			key := res.Key
			if key == "" {
				key = res.URL
			}
			p.publish(token, domain.StatusSucceeded, key)
			return key, nil
		}
		p.Log.Warn("remote upload failed, using fallback key", "file", f.Name, "error", res.Err)
	}

	key, err := p.fallback(ctx, f)
	if err != nil {
		p.publish(token, domain.StatusFailed, "")
		return "", err
	}
	p.publish(token, domain.StatusFallbackSucceeded, key)
	return key, nil
}

// fallback synthesizes a local placeholder key after a simulated delay.
func (p *Pipeline) fallback(ctx context.Context, f domain.File) (string, error) {
	if p.FallbackDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.FallbackDelay):
		}
	}
	return fmt.Sprintf("mock_%d_%s", p.Clock.Now().UnixMilli(), f.Name), nil
}

func (p *Pipeline) begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.status = domain.StatusValidating
	p.key = ""
	return p.seq
}

// publish applies a state transition only if token is still current.
func (p *Pipeline) publish(token uint64, st domain.Status, key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.seq {
		return
	}
	p.status = st
	p.key = key
}
