package ranking

import (
	"math"
	"regexp"
	"strconv"
)

// ScoreUnknown marks an evaluation whose rating could not be parsed.
// Callers must render it as "unknown" rather than a zero score.
const ScoreUnknown = -1

// ratingPattern matches the out-of-ten rating the ranking service
// embeds in its free-text evaluations, e.g. "7.5/10".
var ratingPattern = regexp.MustCompile(`(\d+\.\d+)/10`)

// MatchScore derives a percentage match score from a free-text
// evaluation. The first embedded "X.Y/10" rating is scaled to 0-100;
// when no rating is present the result is ScoreUnknown.
func MatchScore(output string) int {
	match := ratingPattern.FindStringSubmatch(output)
	if match == nil {
		return ScoreUnknown
	}

	rating, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return ScoreUnknown
	}

	return int(math.Round(rating * 10))
}
