package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Command([]string{"sudo", "pacman", "-S", "sway"})
	p.Action("Remove link %s", "/home/user/.config/sway")
	p.Heading("#%d. %s", 1, "basic requirements")
	p.Success("done")
	p.Warning("careful")
	p.Error("failed %s", "foo")

	want := strings.Join([]string{
		"sudo pacman -S sway",
		"Remove link /home/user/.config/sway",
		"#1. basic requirements",
		SuccessIcon + " done",
		WarningIcon + " careful",
		FailureIcon + " failed foo",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestColorPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.Command([]string{"git", "clone"})

	out := buf.String()
	assert.Contains(t, out, "git clone")
	assert.Contains(t, out, "\x1b[", "colored output should carry escape codes")
}

func TestDetectColorHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, DetectColor(nil))
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	err := p.Table([]string{"UNIT", "STATUS"}, [][]string{
		{"sway", "linked"},
		{"waybar", "missing"},
	})
	require.NoError(t, err)

	out := buf.String()
	for _, s := range []string{"UNIT", "STATUS", "sway", "linked", "waybar", "missing"} {
		assert.Contains(t, out, s)
	}
}
