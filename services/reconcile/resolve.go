package reconcile

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"footygraph/lib/graphstore/db"
	"footygraph/lib/textutil"

	"github.com/antzucaro/matchr"
)

// SimilarityThreshold is the lowest score the fuzzy stage accepts.
const SimilarityThreshold = 90

type Stage string

const (
	StageSubstring Stage = "substring"
	StageHeader    Stage = "header"
	StageFuzzy     Stage = "fuzzy"
)

// ClubQuery is what the stats source knows about a club: the name shown in
// the league table and the title read from the club page header.
type ClubQuery struct {
	DisplayName string
	HeaderTitle string
}

type Resolution struct {
	Club  db.Club
	Stage Stage
	// Score is the similarity of the fuzzy stage, 100 for substring matches.
	Score int
}

func byID(clubs []db.Club) []db.Club {
	sorted := slices.Clone(clubs)
	slices.SortFunc(sorted, func(a, b db.Club) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

// Substring returns the first club (by id) whose name contains candidate,
// ignoring case and accents.
func Substring(candidate string, clubs []db.Club) (db.Club, bool) {
	needle := textutil.NormalizeName(candidate)
	if needle == "" {
		return db.Club{}, false
	}
	for _, club := range byID(clubs) {
		if strings.Contains(textutil.NormalizeName(club.Name), needle) {
			return club, true
		}
	}
	return db.Club{}, false
}

// Similarity scores two names from 0 to 100 by their longest common
// subsequence relative to their combined length.
func Similarity(a, b string) int {
	a = textutil.NormalizeName(a)
	b = textutil.NormalizeName(b)
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 0
	}
	lcs := matchr.LongestCommonSubsequence(a, b)
	return int(math.Round(100 * float64(2*lcs) / float64(total)))
}

// Fuzzy returns the most similar club scoring at least threshold, ties go
// to the lowest id.
func Fuzzy(candidate string, clubs []db.Club, threshold int) (db.Club, int, bool) {
	if textutil.NormalizeName(candidate) == "" {
		return db.Club{}, 0, false
	}

	var best db.Club
	bestScore := -1
	for _, club := range byID(clubs) {
		score := Similarity(candidate, club.Name)
		if score > bestScore {
			best = club
			bestScore = score
		}
	}
	if bestScore < threshold {
		return db.Club{}, 0, false
	}
	return best, bestScore, true
}

// ResolveClub runs the resolution cascade over clubs, the first stage that
// matches wins.
func ResolveClub(query ClubQuery, clubs []db.Club) (Resolution, bool) {
	if club, ok := Substring(query.DisplayName, clubs); ok {
		return Resolution{Club: club, Stage: StageSubstring, Score: 100}, true
	}
	if club, ok := Substring(query.HeaderTitle, clubs); ok {
		return Resolution{Club: club, Stage: StageHeader, Score: 100}, true
	}

	candidate := query.HeaderTitle
	if strings.TrimSpace(candidate) == "" {
		candidate = query.DisplayName
	}
	if club, score, ok := Fuzzy(candidate, clubs, SimilarityThreshold); ok {
		return Resolution{Club: club, Stage: StageFuzzy, Score: score}, true
	}
	return Resolution{}, false
}
