package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"100%", "100!%"},
		{"file_key", "file!_key"},
		{"a!b", "a!!b"},
		{"%_!", "!%!_!!"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLike(tc.in), tc.in)
	}
}
