package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheMichaelB/textseal/internal/models"
)

func TestLooksBinary(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{
			name:    "plain text",
			content: []byte("This is plain text\nwith lines\tand tabs"),
			want:    false,
		},
		{
			name:    "unicode text",
			content: []byte("Привет, 世界! 🌍"),
			want:    false,
		},
		{
			name:    "null bytes",
			content: []byte{'a', 0x00, 'b'},
			want:    true,
		},
		{
			name:    "high non-printable ratio",
			content: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
			want:    true,
		},
		{
			name:    "empty",
			content: []byte{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.LooksBinary(tt.content))
		})
	}
}

func TestCheckText(t *testing.T) {
	assert.NoError(t, models.CheckText([]byte("hello world")))
	assert.NoError(t, models.CheckText(nil))
	assert.ErrorIs(t, models.CheckText([]byte{0xFF, 0xD8, 0xFF, 'a'}), models.ErrInvalidInput)
	assert.ErrorIs(t, models.CheckText([]byte{0x00}), models.ErrInvalidInput)
}
