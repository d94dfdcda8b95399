package base

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSet wraps a flag.FlagSet so commands can render their flags in Help().
type FlagSet struct {
	*flag.FlagSet
}

func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.Usage = func() {}
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the flag usage text for a command's Help() output.
func (f *FlagSet) Help() string {
	var out bytes.Buffer

	first := true
	f.VisitAll(func(fl *flag.Flag) {
		if first {
			out.WriteString("Options:\n\n")
			first = false
		}

		name, usage := flag.UnquoteUsage(fl)
		if name != "" {
			fmt.Fprintf(&out, "  -%s=<%s>\n", fl.Name, name)
		} else {
			fmt.Fprintf(&out, "  -%s\n", fl.Name)
		}
		for _, line := range strings.Split(usage, "\n") {
			fmt.Fprintf(&out, "      %s\n", line)
		}
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&out, "      Default: %s\n", fl.DefValue)
		}
		out.WriteString("\n")
	})

	return strings.TrimRight(out.String(), "\n")
}
