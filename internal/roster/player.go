package roster

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Player is one roster row. Immutable once read.
type Player struct {
	TeamName  string
	FirstName string
	LastName  string
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Player) TeamSlug() string {
	return Slugify(p.TeamName)
}

func (p Player) PlayerSlug() string {
	return Slugify(p.FirstName + "_" + p.LastName)
}

// OutputName is the stem of the per-player ratings artifact.
func (p Player) OutputName() string {
	return p.TeamSlug() + "_" + p.PlayerSlug()
}

var (
	deaccent    = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
	underscores = regexp.MustCompile(`_+`)
)

// Slugify derives a lowercase filesystem-safe identifier from a name: accents
// are folded to ASCII, every non-alphanumeric run becomes a single underscore.
func Slugify(text string) string {
	folded, _, err := transform.String(deaccent, text)
	if err != nil {
		folded = text
	}
	var b strings.Builder
	for _, r := range folded {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	s := strings.ToLower(b.String())
	s = nonAlnum.ReplaceAllString(s, "_")
	s = underscores.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
