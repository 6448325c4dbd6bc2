package fbref

import "strings"

var DefaultAbbreviations = map[string]string{
	"Utd": "United",
}

// DefaultAliases maps display names that share too little with the
// identity source's club names for any resolution stage to bridge.
var DefaultAliases = map[string]string{
	"Rennes":          "Stade Rennais FC",
	"Internazionale":  "Inter Milan",
	"Nott'ham Forest": "Nottingham Forest",
	"Wolves":          "Wolverhampton Wanderers",
	"Athletic Club":   "Athletic Bilbao",
}

// ClubNames rewrites league table display names before they are resolved.
type ClubNames struct {
	Abbreviations map[string]string
	Aliases       map[string]string
}

func DefaultClubNames() ClubNames {
	return ClubNames{
		Abbreviations: DefaultAbbreviations,
		Aliases:       DefaultAliases,
	}
}

// Fix expands abbreviated words first and then applies the alias table to
// the whole name.
func (n ClubNames) Fix(displayName string) string {
	words := strings.Fields(displayName)
	for i, w := range words {
		if full, ok := n.Abbreviations[w]; ok {
			words[i] = full
		}
	}
	name := strings.Join(words, " ")
	if alias, ok := n.Aliases[name]; ok {
		return alias
	}
	return name
}
