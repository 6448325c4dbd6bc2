package textutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numericPrefix = regexp.MustCompile(`\d+(?:\.\d+)?`)

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// ParseMarketValue converts a market value string such as "€45.50m" or
// "€750k" into millions rounded to one decimal. Values without a
// recognized magnitude suffix, or without a number, are 0.
func ParseMarketValue(text string) float64 {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0
	}

	var divisor float64
	switch {
	case strings.HasSuffix(text, "m"):
		divisor = 1
	case strings.HasSuffix(text, "k"):
		divisor = 1000
	default:
		return 0
	}

	number := numericPrefix.FindString(text)
	if number == "" {
		return 0
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0
	}
	return roundTenth(value / divisor)
}

// ParsePercent parses a statistic value, a trailing percent sign and
// thousands separators are dropped, ex. "45.3%" -> 45.3.
func ParsePercent(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimSuffix(cleaned, "%")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty statistic value %q", text)
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse statistic value %q: %w", text, err)
	}
	return value, nil
}
