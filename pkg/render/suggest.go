package render

import "github.com/lithammer/fuzzysearch/fuzzy"

// Suggest returns the closest registered layout name to name, for the CLI's
// "did you mean" hint when an unknown --layout value is given.
func Suggest(name string) (string, bool) {
	ranks := fuzzy.RankFindFold(name, Names())
	if len(ranks) == 0 {
		return "", false
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target, true
}
