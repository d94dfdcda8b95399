package convert

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/base"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/casing"
)

type Command struct {
	*base.Command

	// Stdin is read when no words are given. Defaults to os.Stdin.
	Stdin io.Reader

	flagTo string
}

func (c *Command) Synopsis() string {
	return "Convert text to a case policy"
}

func (c *Command) Help() string {
	return `Usage: anythink convert -to=<policy> [words...]

  Converts the given words, joined by spaces, to the chosen case policy.
  With no words, every line read from standard input is converted and
  printed on its own line.

  Policies: ` + policyNames() + `

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("convert", flag.ContinueOnError))

	f.StringVar(
		&c.flagTo, "to", string(casing.Kebab),
		"Case policy to convert to. Aliases such as \"kebab-case\" or \"camelCase\"\nare accepted.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	policy, err := casing.ParsePolicy(c.flagTo)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error: %v (supported: %s)", err, policyNames()))
		return 1
	}

	if words := f.Args(); len(words) > 0 {
		return c.convert(policy, strings.Join(words, " "))
	}

	in := c.Stdin
	if in == nil {
		in = os.Stdin
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if code := c.convert(policy, scanner.Text()); code != 0 {
			return code
		}
	}
	if err := scanner.Err(); err != nil {
		c.UI.Error(fmt.Sprintf("error reading input: %v", err))
		return 1
	}

	return 0
}

func (c *Command) convert(policy casing.Policy, s string) int {
	out, err := casing.Convert(policy, s)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error converting %q: %v", s, err))
		return 1
	}
	c.UI.Output(out)
	return 0
}

func policyNames() string {
	var names []string
	for _, p := range casing.Policies() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
