package testutil

import (
	"bytes"

	"github.com/arthur-debert/ricer/pkg/style"
)

// NewBufferPrinter returns an uncolored printer and the buffer it writes to
func NewBufferPrinter() (*style.Printer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return style.NewPrinter(buf, false), buf
}
