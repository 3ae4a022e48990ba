// Package naming holds the string helpers used to address and display club
// entities: slugs for players and opponents, and display forms of the short
// codes found in the roster data.
package naming

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	dashRunRe    = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a display name into the addressing key used for players
// and opponents. Only ASCII word characters and dashes survive, so accented
// letters are dropped rather than transliterated:
//
//	"Asa Storm"         -> "asa-storm"
//	"Jamón Mättilä Jr." -> "jamn-mttil-jr"
//	"  2 Towns "        -> "2-towns"
func Slugify(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = nonWordRe.ReplaceAllString(s, "")
	s = dashRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
