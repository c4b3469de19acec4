package detector

import "fmt"

// Deduper guards at-most-once emission of match events. Keys are
// deterministic strings derived from the match identifier and the event
// discriminant, so replaying an identical snapshot never re-fires.
// Not safe for concurrent use.
type Deduper struct {
	emitted map[string]struct{}
}

// NewDeduper creates an empty deduplicator
func NewDeduper() *Deduper {
	return &Deduper{
		emitted: make(map[string]struct{}),
	}
}

// TryEmit records the key and returns true on its first occurrence;
// any later call with the same key returns false.
func (d *Deduper) TryEmit(key string) bool {
	if _, seen := d.emitted[key]; seen {
		return false
	}
	d.emitted[key] = struct{}{}
	return true
}

// Len returns the number of recorded event keys
func (d *Deduper) Len() int {
	return len(d.emitted)
}

// StartedKey is the event key for a match kickoff
func StartedKey(matchID string) string {
	return fmt.Sprintf("%s_started", matchID)
}

// GoalKey is the event key for a goal, keyed on the resulting absolute
// score rather than a goal counter.
func GoalKey(matchID string, home, away int) string {
	return fmt.Sprintf("%s_score_%d_%d", matchID, home, away)
}

// FinishedKey is the event key for a match final whistle
func FinishedKey(matchID string) string {
	return fmt.Sprintf("%s_finished", matchID)
}
