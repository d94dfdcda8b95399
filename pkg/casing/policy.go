package casing

import (
	"fmt"
	"strings"
)

// Policy names a target casing.
type Policy string

const (
	Kebab    Policy = "kebab"
	Camel    Policy = "camel"
	Dot      Policy = "dot"
	Snake    Policy = "snake"
	Pascal   Policy = "pascal"
	Constant Policy = "constant"
)

// policyAliases maps a normalized policy name to its Policy. Keys are
// lowercase with all separators removed.
var policyAliases = map[string]Policy{
	"kebab":          Kebab,
	"kebabcase":      Kebab,
	"dash":           Kebab,
	"dashcase":       Kebab,
	"lowerdash":      Kebab,
	"spinal":         Kebab,
	"spinalcase":     Kebab,
	"camel":          Camel,
	"camelcase":      Camel,
	"lowercamel":     Camel,
	"lowercamelcase": Camel,
	"dot":            Dot,
	"dotcase":        Dot,
	"snake":          Snake,
	"snakecase":      Snake,
	"underscore":     Snake,
	"lowersnake":     Snake,
	"pascal":         Pascal,
	"pascalcase":     Pascal,
	"uppercamel":     Pascal,
	"uppercamelcase": Pascal,
	"constant":       Constant,
	"constantcase":   Constant,
	"screamingsnake": Constant,
	"uppersnake":     Constant,
	"macro":          Constant,
}

// Policies returns every supported policy in a stable order.
func Policies() []Policy {
	return []Policy{Kebab, Camel, Dot, Snake, Pascal, Constant}
}

// ParsePolicy resolves a policy from its name or one of its aliases, e.g.
// "kebab-case", "camelCase", "dot.case" or "SCREAMING_SNAKE". Matching ignores
// case and separators.
func ParsePolicy(name string) (Policy, error) {
	key := strings.Join(Words(strings.ToLower(name)), "")
	if p, ok := policyAliases[key]; ok {
		return p, nil
	}
	return "", &Error{
		Op:  "ParsePolicy",
		Err: ErrUnknownPolicy,
		Msg: fmt.Sprintf("%q", name),
	}
}

// IsValid reports whether p is a supported policy.
func (p Policy) IsValid() bool {
	_, ok := styles[p]
	return ok
}

func (p Policy) String() string {
	return string(p)
}
