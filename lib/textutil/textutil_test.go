package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMarketValue(t *testing.T) {
	testCases := []struct {
		in       string
		expected float64
	}{
		{in: "€45.50m", expected: 45.5},
		{in: "€120.00m", expected: 120},
		{in: "€750k", expected: 0.8},
		{in: "€300k", expected: 0.3},
		{in: "€1.25m", expected: 1.3},
		{in: " £8.00m \n", expected: 8},
		{in: "-", expected: 0},
		{in: "", expected: 0},
		{in: "€45.50", expected: 0},
		{in: "€m", expected: 0},
	}
	for _, test := range testCases {
		require.InDelta(t, test.expected, ParseMarketValue(test.in), 1e-9, test.in)
	}
}

func TestParsePercent(t *testing.T) {
	testCases := []struct {
		in       string
		expected float64
		fails    bool
	}{
		{in: "8", expected: 8},
		{in: "45.3%", expected: 45.3},
		{in: " 0.35 ", expected: 0.35},
		{in: "1,234", expected: 1234},
		{in: "%", fails: true},
		{in: "n/a", fails: true},
	}
	for _, test := range testCases {
		value, err := ParsePercent(test.in)
		if test.fails {
			require.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		require.InDelta(t, test.expected, value, 1e-9, test.in)
	}
}

func TestTransliterate(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "Bukayo Saka", expected: "Bukayo Saka"},
		{in: "Martin Ødegaard", expected: "Martin Odegaard"},
		{in: "Jérémy Doku", expected: "Jeremy Doku"},
		{in: "Sergio Agüero", expected: "Sergio Aguero"},
		{in: "Łukasz Fabiański", expected: "Lukasz Fabianski"},
		{in: "Ilkay Gündoğan", expected: "Ilkay Gundogan"},
		{in: "Çağlar Söyüncü", expected: "Caglar Soyuncu"},
		{in: "Fabian Schär", expected: "Fabian Schar"},
		{in: "Nott’ham Forest", expected: "Nott'ham Forest"},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, Transliterate(test.in))
	}
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "martin odegaard", NormalizeName("  Martin\n Ødegaard "))
}

func TestCellFilters(t *testing.T) {
	require.True(t, KeepCell("Non-Penalty Goals"))
	require.True(t, KeepCell("12"))
	require.False(t, KeepCell(" x "))
	require.False(t, KeepCell(""))

	require.True(t, KeepLabel("Non-Penalty Goals"))
	require.True(t, KeepLabel("xG: Expected Goals"))
	require.False(t, KeepLabel("% of Dribblers Tackled"))
	require.False(t, KeepLabel("90s"))
	require.False(t, KeepLabel("A"))
}
