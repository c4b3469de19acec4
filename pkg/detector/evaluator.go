package detector

import (
	"strconv"
	"strings"
)

// correctScorePrefix marks correct-score selections like "CS2-1"
const correctScorePrefix = "CS"

// Evaluate decides whether a market selection wins given a final score.
// It is pure and total: unknown or malformed selection codes evaluate to
// false rather than returning an error.
func Evaluate(selection string, home, away int) bool {
	total := home + away

	switch selection {
	case "1":
		return home > away
	case "X":
		return home == away
	case "2":
		return away > home
	case "1X":
		return home >= away
	case "X2":
		return away >= home
	case "12":
		return home != away
	case "O1.5":
		return total > 1
	case "O2.5":
		return total > 2
	case "O3.5":
		return total > 3
	case "U1.5":
		return total < 2
	case "U2.5":
		return total < 3
	case "U3.5":
		return total < 4
	case "BTTS_Y":
		return home > 0 && away > 0
	case "BTTS_N":
		return home == 0 || away == 0
	case "H1-1":
		return home-1 > away
	case "H1+1":
		return home+1 > away
	case "H2-1":
		return away-1 > home
	case "H2+1":
		return away+1 > home
	}

	if strings.HasPrefix(selection, correctScorePrefix) {
		return evaluateCorrectScore(selection, home, away)
	}

	return false
}

// evaluateCorrectScore parses a "CS<h>-<a>" selection and compares it to
// the final score. Malformed suffixes evaluate to false.
func evaluateCorrectScore(selection string, home, away int) bool {
	parts := strings.Split(strings.TrimPrefix(selection, correctScorePrefix), "-")
	if len(parts) != 2 {
		return false
	}

	wantHome, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	wantAway, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	return home == wantHome && away == wantAway
}
