package terminal

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Input(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("hello\r\nlast"), &out)

	line, err := p.Input("> ")
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	line, err = p.Input("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = p.Input("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestPrompter_IntInputRetries(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n\n 4 \n"), &out)

	value, err := p.IntInput("column: ")
	require.NoError(t, err)
	assert.Equal(t, 4, value)
	assert.Equal(t, 2, strings.Count(out.String(), "Try again..."))
}

func TestPrompter_IntInputQuit(t *testing.T) {
	p := NewPrompter(strings.NewReader("Quit\n"), io.Discard)
	_, err := p.IntInput("column: ")
	assert.ErrorIs(t, err, ErrQuit)
}

func TestPrompter_YesNoInput(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"  No \n", false},
		{"maybe\nyes\n", true},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewPrompter(strings.NewReader(tt.input), &out).YesNoInput("again? ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	var out bytes.Buffer
	_, err := NewPrompter(strings.NewReader("maybe\n"), &out).YesNoInput("again? ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "Invalid input!")
}
