package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errb bytes.Buffer
	return NewPrinter(&out, &errb, false), &out, &errb
}

func TestLinePlainWhenNotATerminal(t *testing.T) {
	p, out, errb := newTestPrinter()

	p.Line("buy milk", false)
	p.Line("pay rent", true)

	assert.Equal(t, "[ ] buy milk\n[x] pay rent\n", out.String())
	assert.Empty(t, errb.String())
}

func TestLineKeepsNameVerbatim(t *testing.T) {
	p, out, _ := newTestPrinter()
	p.Line("tab\there  ", false)
	assert.Equal(t, "[ ] tab\there  \n", out.String())
}

func TestDiagnosticsGoToErr(t *testing.T) {
	p, out, errb := newTestPrinter()

	p.Warn("failed to read .todocli")
	p.Fail("no such entry: milk")

	assert.Empty(t, out.String())
	assert.Equal(t, "! failed to read .todocli\n✖ no such entry: milk\n", errb.String())
}

func TestOK(t *testing.T) {
	p, out, _ := newTestPrinter()
	p.OK("saved")
	assert.Equal(t, "✔ saved\n", out.String())
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ColorEnabled(&buf, false), "buffers are never terminals")
	assert.False(t, ColorEnabled(os.Stdout, true), "explicitly disabled")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(os.Stdout, false))
}

func TestBox(t *testing.T) {
	assert.Equal(t, "[x]", Box(true))
	assert.Equal(t, "[ ]", Box(false))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name               string
		done, total, width int
		want               string
	}{
		{"empty list", 0, 0, 4, "[░░░░] 0/0"},
		{"half", 2, 4, 4, "[██░░] 2/4"},
		{"all", 3, 3, 3, "[███] 3/3"},
		{"default width", 0, 1, 0, "[" + repeat("░", 28) + "] 0/1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressBar(tt.done, tt.total, tt.width))
		})
	}
}

func repeat(s string, n int) string {
	var b bytes.Buffer
	for i := 0; i < n; i++ {
		b.WriteString(s)
	}
	return b.String()
}
