package detector

// scorePair is one observed (home, away) goal pair
type scorePair struct {
	home int
	away int
}

// ScoreTracker remembers the last observed score per match across polling
// cycles so the detector can compute deltas. Not safe for concurrent use;
// the detector runs one evaluation pass at a time.
type ScoreTracker struct {
	scores map[string]scorePair
}

// NewScoreTracker creates an empty score tracker
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{
		scores: make(map[string]scorePair),
	}
}

// Observe returns the previously stored score for the match, (0, 0) if the
// match has not been seen, then unconditionally stores the new score.
func (t *ScoreTracker) Observe(matchID string, home, away int) (prevHome, prevAway int) {
	prev := t.scores[matchID]
	t.scores[matchID] = scorePair{home: home, away: away}
	return prev.home, prev.away
}

// Len returns the number of tracked matches
func (t *ScoreTracker) Len() int {
	return len(t.scores)
}
