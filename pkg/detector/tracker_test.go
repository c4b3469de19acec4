package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestObserve_Unseen tests that an unseen match reports a zero previous score
func TestObserve_Unseen(t *testing.T) {
	tracker := NewScoreTracker()

	prevHome, prevAway := tracker.Observe("m1", 1, 0)

	assert.Equal(t, 0, prevHome)
	assert.Equal(t, 0, prevAway)
	assert.Equal(t, 1, tracker.Len())
}

// TestObserve_ReturnsPrevious tests that each observation returns the prior pair
func TestObserve_ReturnsPrevious(t *testing.T) {
	tracker := NewScoreTracker()

	tracker.Observe("m1", 1, 0)
	prevHome, prevAway := tracker.Observe("m1", 2, 0)

	assert.Equal(t, 1, prevHome)
	assert.Equal(t, 0, prevAway)
}

// TestObserve_OverwritesUnchangedScore tests that the store is overwritten
// even when the score did not change
func TestObserve_OverwritesUnchangedScore(t *testing.T) {
	tracker := NewScoreTracker()

	tracker.Observe("m1", 1, 1)
	tracker.Observe("m1", 1, 1)
	prevHome, prevAway := tracker.Observe("m1", 2, 1)

	assert.Equal(t, 1, prevHome)
	assert.Equal(t, 1, prevAway)
}

// TestObserve_IndependentMatches tests that matches do not share state
func TestObserve_IndependentMatches(t *testing.T) {
	tracker := NewScoreTracker()

	tracker.Observe("m1", 3, 0)
	prevHome, prevAway := tracker.Observe("m2", 0, 1)

	assert.Equal(t, 0, prevHome)
	assert.Equal(t, 0, prevAway)
	assert.Equal(t, 2, tracker.Len())
}
