package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingSettings(t *testing.T) {
	t.Run("complete config has nothing missing", func(t *testing.T) {
		assert.Empty(t, missingSettings(Config{
			Endpoint:  "localhost:9000",
			AccessKey: "minio",
			SecretKey: "minio123",
			Bucket:    "pitchboard",
		}))
	})

	t.Run("names each absent setting", func(t *testing.T) {
		missing := missingSettings(Config{Endpoint: "localhost:9000"})
		assert.Equal(t, []string{"accessKey", "secretKey", "bucket"}, missing)
	})
}

func TestResolveURL(t *testing.T) {
	s := &Store{bucket: "pitchboard", endpoint: "localhost:9000", scheme: "http"}
	assert.Equal(t, "http://localhost:9000/pitchboard/1748614755132_pitch.mp3",
		s.ResolveURL("1748614755132_pitch.mp3"))

	s.scheme = "https"
	s.endpoint = "blobs.example.com"
	assert.Equal(t, "https://blobs.example.com/pitchboard/a.pdf", s.ResolveURL("a.pdf"))
}
