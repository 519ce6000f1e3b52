package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// latexEscapes maps LaTeX-special characters to safe replacements.
var latexEscapes = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
}

// Escape makes text safe for LaTeX source.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if esc, ok := latexEscapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate fits text within max characters, ellipsis included.
// Characters are runes, so multibyte titles never get split mid-rune.
func Truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// JoinAuthors flattens an author list for display: one name as-is,
// two joined with "and", more as "first et al.".
func JoinAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	case 2:
		return authors[0] + " and " + authors[1]
	default:
		return authors[0] + " et al."
	}
}

// vendorNames maps vendor IDs to display names.
var vendorNames = map[string]string{
	"sirsi_dynix":       "SirsiDynix",
	"innovative_sierra": "Sierra",
	"polaris":           "Polaris",
	"evergreen":         "Evergreen",
	"koha":              "Koha",
	"bibliocommons":     "BiblioCommons",
	"carl_x":            "CARL.X",
	"apollo":            "Apollo/Biblionix",
	"atriuum":           "Atriuum",
	"tlc":               "TLC",
	"aspen_discovery":   "Aspen Discovery",
	"spydus":            "Spydus",
	"iii_vega":          "III Vega",
	"unknown":           "Unknown",
}

// VendorPretty converts a vendor ID to its display name, passing
// unknown IDs through unchanged.
func VendorPretty(vendor string) string {
	if pretty, ok := vendorNames[vendor]; ok {
		return pretty
	}
	return vendor
}

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber renders an integer with comma grouping.
func FormatNumber(n int) string {
	return numberPrinter.Sprintf("%d", n)
}
