package uploads

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/deuslabs/pitchboard/internal/domain/uploads"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

// fakeStore is a scripted ObjectStore double.
type fakeStore struct {
	succeed bool
	calls   int

	// blockUntil, when set, parks Upload until the channel is closed so
	// tests can interleave concurrent uploads.
	blockUntil chan struct{}
	entered    chan struct{}
}

func (s *fakeStore) Upload(ctx context.Context, f domain.File, key string) domain.UploadResult {
	s.calls++
	if s.entered != nil {
		close(s.entered)
	}
	if s.blockUntil != nil {
		<-s.blockUntil
	}
	if !s.succeed {
		return domain.UploadResult{Success: false, Err: "connection refused"}
	}
	return domain.UploadResult{
		Success: true,
		Key:     "1748615000000_" + f.Name,
		URL:     "http://store.local/pitchboard/1748615000000_" + f.Name,
	}
}

func (s *fakeStore) Download(ctx context.Context, key string) ([]byte, bool) { return nil, false }
func (s *fakeStore) Remove(ctx context.Context, key string) error           { return nil }
func (s *fakeStore) CheckReachable(ctx context.Context) bool                { return false }
func (s *fakeStore) ResolveURL(key string) string                           { return "" }

func validFile() domain.File {
	return domain.File{
		Name:        "pitch.mp3",
		ContentType: "audio/mpeg",
		Size:        2048,
		Content:     strings.NewReader("audio-bytes"),
	}
}

func TestPipelineUpload(t *testing.T) {
	clock := fixedClock{at: time.UnixMilli(1748615123456)}

	t.Run("remote success publishes the store key", func(t *testing.T) {
		store := &fakeStore{succeed: true}
		p := NewPipeline(store, clock, nil)

		key, err := p.Upload(context.Background(), validFile())
		require.NoError(t, err)
		assert.Equal(t, "1748615000000_pitch.mp3", key)
		assert.Equal(t, domain.StatusSucceeded, p.Status())
		assert.Equal(t, key, p.Key())
		assert.Equal(t, 1, store.calls)
	})

	t.Run("remote failure falls back to a synthesized key", func(t *testing.T) {
		store := &fakeStore{succeed: false}
		p := NewPipeline(store, clock, nil)

		key, err := p.Upload(context.Background(), validFile())
		require.NoError(t, err)
		assert.Equal(t, "mock_1748615123456_pitch.mp3", key)
		assert.Equal(t, domain.StatusFallbackSucceeded, p.Status())
		assert.Equal(t, 1, store.calls)
	})

	t.Run("nil store goes straight to fallback", func(t *testing.T) {
		p := NewPipeline(nil, clock, nil)

		key, err := p.Upload(context.Background(), validFile())
		require.NoError(t, err)
		assert.Equal(t, "mock_1748615123456_pitch.mp3", key)
		assert.Equal(t, domain.StatusFallbackSucceeded, p.Status())
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		store := &fakeStore{succeed: true}
		p := NewPipeline(store, clock, nil)

		_, err := p.Upload(context.Background(), domain.File{
			Name:        "clip.avi",
			ContentType: "video/avi",
			Size:        2048,
		})
		require.Error(t, err)

		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
		assert.Equal(t, domain.StatusFailed, p.Status())
		assert.Empty(t, p.Key())
		assert.Zero(t, store.calls)
	})

	t.Run("cancelled fallback delay reports the context error", func(t *testing.T) {
		p := NewPipeline(nil, clock, nil)
		p.FallbackDelay = time.Minute

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Upload(ctx, validFile())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, domain.StatusFailed, p.Status())
	})
}

func TestPipelineStaleUploadDiscarded(t *testing.T) {
	clock := fixedClock{at: time.UnixMilli(1748615123456)}

	slow := &fakeStore{
		succeed:    false,
		blockUntil: make(chan struct{}),
		entered:    make(chan struct{}),
	}
	p := NewPipeline(slow, clock, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Upload(context.Background(), validFile())
	}()
	<-slow.entered

	// Re-selecting a file supersedes the in-flight upload.
	p.Store = &fakeStore{succeed: true}
	key, err := p.Upload(context.Background(), domain.File{
		Name:        "replacement.pdf",
		ContentType: "application/pdf",
		Size:        512,
		Content:     strings.NewReader("pdf-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "1748615000000_replacement.pdf", key)

	// Let the stale upload finish; it must not overwrite the result.
	close(slow.blockUntil)
	<-done

	assert.Equal(t, domain.StatusSucceeded, p.Status())
	assert.Equal(t, "1748615000000_replacement.pdf", p.Key())
}

func TestPipelineReset(t *testing.T) {
	p := NewPipeline(&fakeStore{succeed: true}, fixedClock{at: time.Now()}, nil)

	_, err := p.Upload(context.Background(), validFile())
	require.NoError(t, err)
	require.Equal(t, domain.StatusSucceeded, p.Status())

	p.Reset()
	assert.Equal(t, domain.StatusIdle, p.Status())
	assert.Empty(t, p.Key())
}
