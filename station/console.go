package station

import (
	"fmt"
	"io"
	"os"
)

// Console is the operator-facing text stream shared by the station, its
// modules, drones and mission control.
type Console struct {
	w io.Writer
}

// NewConsole writes to w, or to stdout when w is nil.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

func (c *Console) Println(msg string) {
	if c == nil {
		return
	}
	fmt.Fprintln(c.w, msg)
}

func (c *Console) Printf(format string, args ...any) {
	if c == nil {
		return
	}
	fmt.Fprintf(c.w, format+"\n", args...)
}
