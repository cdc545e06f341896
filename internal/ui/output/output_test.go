package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/cbuild/internal/ui/output"
	"go.trai.ch/cbuild/internal/ui/style"
)

func TestProfiles_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.True(t, output.NoColor())
	assert.Equal(t, termenv.Ascii, output.Detected())
	assert.Equal(t, termenv.Ascii, output.ANSI())
}

func TestProfiles_Color(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	assert.False(t, output.NoColor())
	assert.Equal(t, termenv.ANSI, output.ANSI())

	// Detection depends on the terminal running the tests.
	p := output.Detected()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii)
}

func TestNew_WritesThrough(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf, output.ANSI)

	_, _ = out.WriteString("Compilation")
	assert.Equal(t, "Compilation", buf.String())
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotNil(t, output.New(nil, output.Detected))
}

func TestPaint(t *testing.T) {
	var buf bytes.Buffer

	t.Run("plain without colour", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		out := output.New(&buf, output.ANSI)
		assert.Equal(t, "Failure", output.Paint(out, "Failure", style.Failure).String())
	})

	t.Run("escaped with colour", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		out := output.New(&buf, output.ANSI)
		painted := output.Paint(out, "Failure", style.Failure).String()
		assert.Contains(t, painted, "\x1b[")
		assert.Contains(t, painted, "Failure")
	})
}
