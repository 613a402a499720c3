package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProjectID(t *testing.T) {
	for _, id := range []string{"abc", "a1b2-c3_d4", "d0c2f240-7cc3-44ac-9b9d"} {
		assert.NoError(t, ValidateProjectID(id), id)
	}
	for _, id := range []string{"", "id with spaces", "évènement", "a/b", string(make([]byte, 65))} {
		assert.Error(t, ValidateProjectID(id), id)
	}
}

func TestValidateFileKey(t *testing.T) {
	assert.NoError(t, ValidateFileKey("1748614755132_First Take - Jennie Good.mp3"))
	assert.NoError(t, ValidateFileKey("mock_1748614755132_pitch.mp3"))

	for _, key := range []string{"", "../etc/passwd", "a;rm -rf", "a`b`", "x$(y)", "a\nb"} {
		assert.Error(t, ValidateFileKey(key), key)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello\x00  "))
	assert.Equal(t, "line1\nline2", SanitizeString("line1\nline2\x07"))
}

func TestTokenBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(3, 1)
	for i := 0; i < 3; i++ {
		assert.True(t, tb.Allow(), i)
	}
	assert.False(t, tb.Allow())
}
