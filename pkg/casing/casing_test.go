package casing

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"foo_bar-baz", "foo-bar-baz"},
		{"  _foo__Bar--baz  ", "foo-bar-baz"},
		{"déjà_vu 123", "déjà-vu-123"},
		{"foo__bar", "foo-bar"},
		{"foo--bar", "foo-bar"},
		{"foo  bar", "foo-bar"},
		{"foo_bar--baz", "foo-bar-baz"},
		{"", ""},
		{"___", ""},
		{"ΑΒΓ ΔΕ", "αβγ-δε"},
		{"a\u0332b-C\u0332D", "a\u0332b-c\u0332d"},
		{"नमस्ते_दुनिया", "नमस्ते-दुनिया"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToKebabCase(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, KebabCase(tt.in))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"___foo--bar baz", "fooBarBaz"},
		{"FOO_BAR", "fooBar"},
		{"FOo bar", "fooBar"},
		{"123abc_def", "123abcDef"},
		{"mañana-café", "mañanaCafé"},
		{"first name", "firstName"},
		{"user_id", "userId"},
		{"SCREEN_NAME", "screenName"},
		{"mobile-number", "mobileNumber"},
		{"hello world", "helloWorld"},
		{"my_variable-name", "myVariableName"},
		{"already", "already"},
		{"  ", ""},
		{"a\u0332b-C\u0332D", "a\u0332bC\u0332d"},
		{"foo \u0130stanbul", "foo\u0130stanbul"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToCamelCase(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, CamelCase(tt.in))
		})
	}
}

func TestToDotCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"___foo--bar baz", "foo.bar.baz"},
		{"123abc_def", "123abc.def"},
		{"FOO_BAR", "foo.bar"},
		{"mañana-café", "mañana.café"},
		{"-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToDotCase(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, DotCase(tt.in))
		})
	}
}

func TestExtraPolicies(t *testing.T) {
	tests := []struct {
		name string
		fn   func(any, ...Options) (string, error)
		in   string
		want string
	}{
		{"snake", ToSnakeCase, "Hello World", "hello_world"},
		{"snake collapses", ToSnakeCase, "  _foo__Bar--baz  ", "foo_bar_baz"},
		{"pascal", ToPascalCase, "hello world", "HelloWorld"},
		{"pascal from screaming", ToPascalCase, "FOO_BAR", "FooBar"},
		{"pascal leading digit", ToPascalCase, "123abc_def", "123abcDef"},
		{"pascal sharp s", ToPascalCase, "straße", "Straße"},
		{"constant", ToConstantCase, "foo-bar baz", "FOO_BAR_BAZ"},
		{"constant full upper mapping", ToConstantCase, "straße", "STRASSE"},
		{"constant unicode", ToConstantCase, "déjà_vu", "DÉJÀ_VU"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "hello_world", SnakeCase("Hello World"))
	assert.Equal(t, "HelloWorld", PascalCase("hello world"))
	assert.Equal(t, "HELLO_WORLD", ConstantCase("hello world"))
}

func TestConvert_NonTextInput(t *testing.T) {
	var nilString *string
	inputs := []any{
		123,
		12.5,
		nil,
		true,
		nilString,
		[]int{1, 2},
		map[string]any{"a": "b"},
		struct{}{},
	}

	for _, p := range Policies() {
		for _, in := range inputs {
			t.Run(fmt.Sprintf("%s/%T", p, in), func(t *testing.T) {
				got, err := Convert(p, in)
				require.NoError(t, err)
				assert.Equal(t, "", got)

				got, err = Convert(p, in, Options{Strict: true})
				require.Error(t, err)
				assert.Equal(t, "", got)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				assert.True(t, IsInvalidArgument(err))

				var convErr *Error
				require.True(t, errors.As(err, &convErr))
				assert.Equal(t, styles[p].op, convErr.Op)
			})
		}
	}
}

func TestConvert_StrictAcceptsText(t *testing.T) {
	s := "Hello World"
	tests := []struct {
		name string
		in   any
	}{
		{"string", s},
		{"string pointer", &s},
		{"bytes", []byte(s)},
		{"runes", []rune(s)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToKebabCase(tt.in, Options{Strict: true})
			require.NoError(t, err)
			assert.Equal(t, "hello-world", got)
		})
	}

	got, err := ToKebabCase("", Options{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestToKebabCase_StrictError(t *testing.T) {
	_, err := ToKebabCase(123, Options{Strict: true})
	require.Error(t, err)
	assert.Equal(t, "ToKebabCase: input must be a string, got int: invalid argument", err.Error())

	_, err = ToCamelCase(nil, Options{Strict: true})
	require.Error(t, err)
	assert.Equal(t, "ToCamelCase: input must be a string, got <nil>: invalid argument", err.Error())
}

func TestConvert_UnknownPolicy(t *testing.T) {
	_, err := Convert(Policy("shouting"), "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
	assert.False(t, IsInvalidArgument(err))
}

func TestConvert_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := Policies()[i%len(Policies())]
			want, _ := Convert(p, "  déjà_vu--Hello World 42 ")
			for j := 0; j < 100; j++ {
				got, err := Convert(p, "  déjà_vu--Hello World 42 ")
				if err != nil || got != want {
					t.Errorf("Convert(%s) = %q, %v; want %q", p, got, err, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestOutputIsNFC(t *testing.T) {
	inputs := []string{
		"\u0130stanbul",
		"foo \u0130stanbul",
		"a\u0332b-C\u0332D",
		"cafe\u0301 au lait",
		"ǅemal straße",
	}

	for _, in := range inputs {
		for _, p := range Policies() {
			got, err := Convert(p, in)
			require.NoError(t, err)
			assert.True(t, norm.NFC.IsNormalString(got), "%s(%q) = %q is not NFC", p, in, got)
		}
	}

	assert.Equal(t, "\u0130stanbul", PascalCase("\u0130stanbul"))
	assert.Equal(t, "\u0130STANBUL", ConstantCase("\u0130stanbul"))
}
