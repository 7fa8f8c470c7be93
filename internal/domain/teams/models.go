package teams

import (
	"sort"
	"strings"
)

// LeagueLogo is the NFL shield shown above the predictor card.
const LeagueLogo = "https://upload.wikimedia.org/wikipedia/en/a/a2/National_Football_League_logo.svg"

const logoBase = "https://a.espncdn.com/i/teamlogos/nfl/500/"

// logoSlugs maps team codes to ESPN logo slugs. Only WAS differs from the lower-cased code.
var logoSlugs = map[string]string{
	"ARI": "ari", "ATL": "atl", "BAL": "bal", "BUF": "buf",
	"CAR": "car", "CHI": "chi", "CIN": "cin", "CLE": "cle",
	"DAL": "dal", "DEN": "den", "DET": "det", "GB": "gb",
	"HOU": "hou", "IND": "ind", "JAX": "jax", "KC": "kc",
	"LV": "lv", "LAC": "lac", "LAR": "lar", "MIA": "mia",
	"MIN": "min", "NE": "ne", "NO": "no", "NYG": "nyg",
	"NYJ": "nyj", "PHI": "phi", "PIT": "pit", "SF": "sf",
	"SEA": "sea", "TB": "tb", "TEN": "ten", "WAS": "wsh",
}

// Team is a selectable team with its display logo.
type Team struct {
	Code string
	Logo string
}

// Known reports whether the code is one of the 32 teams we have logos for.
func Known(code string) bool {
	_, ok := logoSlugs[strings.ToUpper(code)]
	return ok
}

// Logo returns the ESPN logo URL for a team code, or "" when unknown.
func Logo(code string) string {
	slug, ok := logoSlugs[strings.ToUpper(code)]
	if !ok {
		return ""
	}
	return logoBase + slug + ".png"
}

// Codes returns all known team codes sorted alphabetically.
func Codes() []string {
	codes := make([]string, 0, len(logoSlugs))
	for code := range logoSlugs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// FromCodes builds display teams for the given codes, preserving order.
func FromCodes(codes []string) []Team {
	out := make([]Team, 0, len(codes))
	for _, code := range codes {
		out = append(out, Team{Code: code, Logo: Logo(code)})
	}
	return out
}
