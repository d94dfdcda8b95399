// Package casing converts free-form text into identifier casings such as
// kebab-case, camelCase and dot.case.
//
// Every conversion splits its input into words with Words and joins them
// again under the target policy, so "  _foo__Bar--baz  " becomes
// "foo-bar-baz", "fooBarBaz" or "foo.bar.baz". Conversions are pure and safe
// for concurrent use.
package casing

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

type wordCase int

const (
	lowerWord wordCase = iota
	upperWord
	titleWord
)

// style describes how a policy re-joins words.
type style struct {
	op    string
	sep   string
	first wordCase
	rest  wordCase
}

var styles = map[Policy]style{
	Kebab:    {op: "ToKebabCase", sep: "-", first: lowerWord, rest: lowerWord},
	Camel:    {op: "ToCamelCase", sep: "", first: lowerWord, rest: titleWord},
	Dot:      {op: "ToDotCase", sep: ".", first: lowerWord, rest: lowerWord},
	Snake:    {op: "ToSnakeCase", sep: "_", first: lowerWord, rest: lowerWord},
	Pascal:   {op: "ToPascalCase", sep: "", first: titleWord, rest: titleWord},
	Constant: {op: "ToConstantCase", sep: "_", first: upperWord, rest: upperWord},
}

// casers holds the Unicode case mappers used by one conversion. Casers keep
// internal state, so each conversion gets its own.
type casers struct {
	lower cases.Caser
	upper cases.Caser
}

func newCasers() *casers {
	return &casers{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
	}
}

func (c *casers) apply(wc wordCase, word string) string {
	switch wc {
	case upperWord:
		return c.upper.String(word)
	case titleWord:
		lowered := c.lower.String(word)
		_, size := utf8.DecodeRuneInString(lowered)
		return c.upper.String(lowered[:size]) + lowered[size:]
	default:
		return c.lower.String(word)
	}
}

// join re-cases words and joins them. The result is NFC: case mapping can
// decompose a rune, e.g. lowercasing "İ" yields "i" plus U+0307.
func (s style) join(words []string) string {
	if len(words) == 0 {
		return ""
	}

	c := newCasers()
	var b strings.Builder
	for i, w := range words {
		wc := s.rest
		if i == 0 {
			wc = s.first
		} else {
			b.WriteString(s.sep)
		}
		b.WriteString(c.apply(wc, w))
	}
	return norm.NFC.String(b.String())
}

// KebabCase lowercases every word of s and joins them with "-".
func KebabCase(s string) string {
	return styles[Kebab].join(Words(s))
}

// CamelCase lowercases the first word of s entirely, capitalizes the first
// letter of every following word and joins them without a separator.
func CamelCase(s string) string {
	return styles[Camel].join(Words(s))
}

// DotCase lowercases every word of s and joins them with ".".
func DotCase(s string) string {
	return styles[Dot].join(Words(s))
}

// SnakeCase lowercases every word of s and joins them with "_".
func SnakeCase(s string) string {
	return styles[Snake].join(Words(s))
}

// PascalCase capitalizes the first letter of every word of s, lowercases the
// rest and joins them without a separator.
func PascalCase(s string) string {
	return styles[Pascal].join(Words(s))
}

// ConstantCase uppercases every word of s and joins them with "_".
func ConstantCase(s string) string {
	return styles[Constant].join(Words(s))
}
