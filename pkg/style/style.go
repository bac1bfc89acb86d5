// Package style implements the compact node style token used throughout
// treesvg.
//
// A style token has the form "<color>@<size>", like "green@12", "#aa8ef7@3",
// "#f00@38", "rgb(122,17,234)@7" or "rgb(23%,5%,100%)@10". The color part
// accepts the notations allowed by the W3C SVG 1.1 (Second Edition)
// Recommendation, section 4.2:
//
//   - a color keyword: "aliceblue", "darkturquoise", "lightcoral", ...
//   - hexadecimal notation, short or long: "#aa8ef7", "#F7AA9E", "#f00", "#FFF"
//   - rgb notation, value or percentage: "rgb(122,17,234)", "rGb(13, 0, 137)",
//     "rgb(23%,5%,100%)", "RGB(23 %, 5 %, 100 %)"
//
// The size part is the circle radius in pixels, an integer in [0, 100].
//
// Parsing validates both parts up front: an invalid token never produces a
// Spec. Failures carry one of three error codes matching the check that
// failed, tried in order: ErrCodeInvalidStyleFormat when the token does not
// match "<anything>@<digits>", ErrCodeInvalidColor when the color matches
// none of the grammars above, and ErrCodeInvalidSize when the size is out of
// range.
package style

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/matzehuels/treesvg/pkg/errors"
)

// SizeMax is the largest accepted circle radius in pixels.
const SizeMax = 100

var (
	// tokenRe matches the overall "<color>@<size>" token shape. The color
	// group is greedy, so a literal '@' inside the color part is kept there
	// and rejected later by the color grammars.
	tokenRe = regexp.MustCompile(`^(.+)@([0-9]+)$`)

	// hexRe matches short and long hexadecimal notation: "#f00", "#aa8ef7".
	hexRe = regexp.MustCompile(`(?i)^#([a-f0-9]{3}){1,2}$`)

	// rgbValueRe matches value notation like "rgb(122,17,234)" or
	// "rGb( 13, 0, 137 )". Components are checked by digit count only
	// (1-3 digits); out-of-range values such as rgb(999,999,999) pass,
	// matching the leniency of SVG user agents.
	rgbValueRe = regexp.MustCompile(`(?i)^rgb\(\s?[0-9]{1,3}\s?(,\s?[0-9]{1,3}\s?){2}\)$`)

	// rgbPercentRe matches percentage notation like "rgb(23%,5%,100%)" or
	// "RGB( 23 %, 5 %, 100 % )".
	rgbPercentRe = regexp.MustCompile(`(?i)^rgb\(\s?[0-9]{1,3}\s?%\s?(,\s?[0-9]{1,3}\s?%\s?){2}\)$`)

	// ColorID normalization steps, applied in order.
	idStripRe   = regexp.MustCompile(`[#)\s]`)
	idDotRe     = regexp.MustCompile(`[(,]`)
	idPercentRe = regexp.MustCompile(`%`)
)

// Spec is a validated node style: a fill color and a circle radius.
// The zero value is not usable; construct one with Parse or Default.
// Specs are immutable value types and safe to copy.
type Spec struct {
	color string
	size  int
}

// Parse parses a "<color>@<size>" token into a Spec.
//
// Exactly one of three error codes is returned for a malformed token,
// checked in order: token shape, then color grammar, then size range.
func Parse(token string) (Spec, error) {
	m := tokenRe.FindStringSubmatch(token)
	if m == nil {
		return Spec{}, errors.New(errors.ErrCodeInvalidStyleFormat,
			"incorrect style token %q (ex: 'green@12', '#aa8ef7@3', 'rgb(122,17,234)@7')", token)
	}

	color, sizeStr := m[1], m[2]

	if !validColor(color) {
		return Spec{}, errors.New(errors.ErrCodeInvalidColor,
			"incorrect color %q (ex: 'green', '#aa8ef7', '#f00', 'rgb(122,17,234)', 'rgb(23%%,5%%,100%%)')", color)
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 0 || size > SizeMax {
		return Spec{}, errors.New(errors.ErrCodeInvalidSize,
			"size %s must be an integer in [0, %d]", sizeStr, SizeMax)
	}

	return Spec{color: color, size: size}, nil
}

// MustParse is like Parse but panics on error. Intended for constant tokens
// in variable initializers and tests.
func MustParse(token string) Spec {
	s, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the default node style, "blue@12".
func Default() Spec {
	return Spec{color: "blue", size: 12}
}

// validColor reports whether color matches one of the four accepted grammars.
func validColor(color string) bool {
	return IsKeyword(color) ||
		hexRe.MatchString(color) ||
		rgbValueRe.MatchString(color) ||
		rgbPercentRe.MatchString(color)
}

// Color returns the validated color string, exactly as written in the token.
func (s Spec) Color() string { return s.color }

// Size returns the circle radius in pixels.
func (s Spec) Size() int { return s.size }

// String returns the canonical "<color>@<size>" token for the spec.
// The result always re-parses to an equal Spec.
func (s Spec) String() string {
	return fmt.Sprintf("%s@%d", s.color, s.size)
}

// ColorID returns an identifier derived from the color that is legal as an
// XML id attribute value, per the Name production of the W3C XML 1.0
// Recommendation, section 2.3 (referenced by the SVG Recommendation for the
// id core attribute).
//
// The normalization strips '#', ')' and whitespace, replaces '(' and ','
// with '.', and replaces '%' with 'p':
//
//	green             -> green
//	#aa8ef7           -> aa8ef7
//	rgb(122,17,234)   -> rgb.122.17.234
//	rgb( 23%, 5 %, 100% ) -> rgb.23p.5p.100p
//
// Equal colors always map to equal ids. Distinct colors are not guaranteed
// distinct ids, but collisions require deliberately pathological inputs.
func (s Spec) ColorID() string {
	id := idStripRe.ReplaceAllString(s.color, "")
	id = idDotRe.ReplaceAllString(id, ".")
	id = idPercentRe.ReplaceAllString(id, "p")
	return id
}
