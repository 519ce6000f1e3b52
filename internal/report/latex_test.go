package report

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"AT&T", `AT\&T`},
		{"100%", `100\%`},
		{"$5", `\$5`},
		{"#1", `\#1`},
		{"snake_case", `snake\_case`},
		{"{braces}", `\{braces\}`},
		{"~", `\textasciitilde{}`},
		{"^", `\textasciicircum{}`},
		{`a\b`, `a\textbackslash{}b`},
		{"M&M's 100% #1", `M\&M's 100\% \#1`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Escape(tc.in), "input %q", tc.in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly ten", Truncate("exactly ten", 11))
	assert.Equal(t, "this is...", Truncate("this is too long", 10))
	assert.Len(t, Truncate("this is too long", 10), 10)
	assert.Equal(t, "ab", Truncate("abcdef", 2))

	// Accented titles truncate on rune boundaries, never mid-byte.
	got := Truncate("Cafés of the World", 7)
	assert.Equal(t, "Café...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestJoinAuthors(t *testing.T) {
	assert.Equal(t, "", JoinAuthors(nil))
	assert.Equal(t, "Maia Kobabe", JoinAuthors([]string{"Maia Kobabe"}))
	assert.Equal(t, "Justin Richardson and Peter Parnell",
		JoinAuthors([]string{"Justin Richardson", "Peter Parnell"}))
	assert.Equal(t, "First et al.",
		JoinAuthors([]string{"First", "Second", "Third"}))
}

func TestVendorPretty(t *testing.T) {
	assert.Equal(t, "SirsiDynix", VendorPretty("sirsi_dynix"))
	assert.Equal(t, "Apollo/Biblionix", VendorPretty("apollo"))
	assert.Equal(t, "Unknown", VendorPretty("unknown"))
	// Unmapped IDs pass through unchanged.
	assert.Equal(t, "some_new_ils", VendorPretty("some_new_ils"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,234", FormatNumber(1234))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
}
