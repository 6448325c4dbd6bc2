package reconcile

import (
	"testing"

	"footygraph/lib/graphstore/db"

	"github.com/stretchr/testify/require"
)

var premierLeague = []db.Club{
	{ID: 1, Name: "Arsenal FC", LeagueID: 1},
	{ID: 2, Name: "Tottenham Hotspur", LeagueID: 1},
	{ID: 3, Name: "Manchester United", LeagueID: 1},
	{ID: 4, Name: "Manchester City", LeagueID: 1},
	{ID: 5, Name: "Wolverhampton Wanderers", LeagueID: 1},
}

func TestSimilarity(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected int
	}{
		{a: "Arsenal FC", b: "Arsenal FC", expected: 100},
		{a: "Tottenham Hotspurs", b: "Tottenham Hotspur", expected: 97},
		{a: "Bayer Leverkusen", b: "Bayer 04 Leverkusen", expected: 91},
		{a: "ARSENAL fc", b: "Arsenal FC", expected: 100},
		{a: "Atlético Madrid", b: "Atletico Madrid", expected: 100},
		{a: "", b: "", expected: 0},
		{a: "abc", b: "xyz", expected: 0},
	}

	for _, test := range testCases {
		t.Run(test.a+"/"+test.b, func(t *testing.T) {
			require.Equal(t, test.expected, Similarity(test.a, test.b))
		})
	}
}

func TestResolveClubCascade(t *testing.T) {
	testCases := []struct {
		name     string
		query    ClubQuery
		ok       bool
		clubID   int64
		stage    Stage
		minScore int
	}{
		{
			name:   "display name is part of a club name",
			query:  ClubQuery{DisplayName: "Arsenal", HeaderTitle: "Arsenal"},
			ok:     true,
			clubID: 1,
			stage:  StageSubstring,
		},
		{
			name:   "substring ignores case",
			query:  ClubQuery{DisplayName: "tottenham"},
			ok:     true,
			clubID: 2,
			stage:  StageSubstring,
		},
		{
			name:   "first club by id wins the substring stage",
			query:  ClubQuery{DisplayName: "Manchester"},
			ok:     true,
			clubID: 3,
			stage:  StageSubstring,
		},
		{
			name:   "header title",
			query:  ClubQuery{DisplayName: "Spurs", HeaderTitle: "Tottenham Hotspur"},
			ok:     true,
			clubID: 2,
			stage:  StageHeader,
		},
		{
			name:     "fuzzy on the header title",
			query:    ClubQuery{DisplayName: "Spurs", HeaderTitle: "Tottenham Hotspurs"},
			ok:       true,
			clubID:   2,
			stage:    StageFuzzy,
			minScore: 90,
		},
		{
			name:     "fuzzy on the display name without a header",
			query:    ClubQuery{DisplayName: "Wolverhampton Wanderer FC"},
			ok:       true,
			clubID:   5,
			stage:    StageFuzzy,
			minScore: 90,
		},
		{
			name:  "below the threshold",
			query: ClubQuery{DisplayName: "Burnley", HeaderTitle: "Burnley"},
		},
		{
			name:  "empty query",
			query: ClubQuery{},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			resolution, ok := ResolveClub(test.query, premierLeague)
			require.Equal(t, test.ok, ok)
			if !test.ok {
				return
			}
			require.Equal(t, test.clubID, resolution.Club.ID)
			require.Equal(t, test.stage, resolution.Stage)
			require.GreaterOrEqual(t, resolution.Score, test.minScore)
		})
	}
}

func TestSubstringSkipsFuzzy(t *testing.T) {
	// fuzzy matching alone cannot bridge this, so a match proves the
	// substring stage ran
	clubs := []db.Club{{ID: 9, Name: "Arsenal Football Club of North London"}}
	_, _, fuzzyOk := Fuzzy("Arsenal", clubs, SimilarityThreshold)
	require.False(t, fuzzyOk)

	resolution, ok := ResolveClub(ClubQuery{DisplayName: "Arsenal"}, clubs)
	require.True(t, ok)
	require.Equal(t, StageSubstring, resolution.Stage)
	require.Equal(t, int64(9), resolution.Club.ID)
}

func TestFuzzyPicksBestScore(t *testing.T) {
	clubs := []db.Club{
		{ID: 2, Name: "Bayer Leverkusen 04"},
		{ID: 1, Name: "Bayer 04 Leverkusen"},
		{ID: 3, Name: "Bayer Leverkusen."},
	}

	club, score, ok := Fuzzy("Bayer Leverkusen", clubs, SimilarityThreshold)
	require.True(t, ok)
	require.Equal(t, int64(3), club.ID)
	require.Equal(t, 97, score)

	// equal scores go to the lowest id regardless of input order
	club, score, ok = Fuzzy("Bayer Leverkusen", clubs[:2], SimilarityThreshold)
	require.True(t, ok)
	require.Equal(t, int64(1), club.ID)
	require.Equal(t, 91, score)
}

func TestSubstringIgnoresEmptyCandidate(t *testing.T) {
	_, ok := Substring("   ", premierLeague)
	require.False(t, ok)
	_, _, ok = Fuzzy("", premierLeague, 0)
	require.False(t, ok)
}
