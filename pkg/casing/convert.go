package casing

import (
	"fmt"
)

// Options controls how conversions treat input that is not text.
type Options struct {
	// Strict makes non-text input fail with ErrInvalidArgument instead of
	// converting to the empty string.
	Strict bool
}

func isStrict(opts []Options) bool {
	for _, o := range opts {
		if o.Strict {
			return true
		}
	}
	return false
}

// text returns the string held by input. Only string, non-nil *string, []byte
// and []rune count as text.
func text(input any) (string, bool) {
	switch v := input.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case []byte:
		return string(v), true
	case []rune:
		return string(v), true
	default:
		return "", false
	}
}

// Convert converts input under policy p.
//
// If input is not text the result is the empty string, unless one of opts
// sets Strict, in which case an error wrapping ErrInvalidArgument is
// returned. An unsupported policy always fails with ErrUnknownPolicy.
func Convert(p Policy, input any, opts ...Options) (string, error) {
	st, ok := styles[p]
	if !ok {
		return "", &Error{
			Op:  "Convert",
			Err: ErrUnknownPolicy,
			Msg: fmt.Sprintf("%q", string(p)),
		}
	}

	s, ok := text(input)
	if !ok {
		if isStrict(opts) {
			return "", &Error{
				Op:  st.op,
				Err: ErrInvalidArgument,
				Msg: fmt.Sprintf("input must be a string, got %T", input),
			}
		}
		return "", nil
	}

	return st.join(Words(s)), nil
}

// ToKebabCase converts input to kebab-case: "Hello World" -> "hello-world".
func ToKebabCase(input any, opts ...Options) (string, error) {
	return Convert(Kebab, input, opts...)
}

// ToCamelCase converts input to camelCase: "FOO_BAR" -> "fooBar".
func ToCamelCase(input any, opts ...Options) (string, error) {
	return Convert(Camel, input, opts...)
}

// ToDotCase converts input to dot.case: "123abc_def" -> "123abc.def".
func ToDotCase(input any, opts ...Options) (string, error) {
	return Convert(Dot, input, opts...)
}

// ToSnakeCase converts input to snake_case.
func ToSnakeCase(input any, opts ...Options) (string, error) {
	return Convert(Snake, input, opts...)
}

// ToPascalCase converts input to PascalCase.
func ToPascalCase(input any, opts ...Options) (string, error) {
	return Convert(Pascal, input, opts...)
}

// ToConstantCase converts input to CONSTANT_CASE.
func ToConstantCase(input any, opts ...Options) (string, error) {
	return Convert(Constant, input, opts...)
}
