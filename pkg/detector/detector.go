package detector

import (
	"github.com/rs/zerolog"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// EventType tags the kind of match event the detector emitted
type EventType string

const (
	EventKickoff  EventType = "kickoff"
	EventGoal     EventType = "goal"
	EventFinished EventType = "finished"
)

// Scorer values for goal events
const (
	ScorerHome = "home"
	ScorerAway = "away"
)

// Event is one detected match-state transition, decoupled from its push
// presentation. Scorer is set for goal events only; Won is meaningful for
// finished events only.
type Event struct {
	Type      EventType
	MatchID   string
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
	Scorer    string
	Won       bool
}

// Detector derives discrete, deduplicated events from successive polling
// snapshots of live match data evaluated against open tickets.
type Detector struct {
	tracker *ScoreTracker
	deduper *Deduper
	logger  zerolog.Logger
}

// NewDetector creates a detector around the given score tracker and
// deduplicator. Both are owned state; construct fresh ones per process.
func NewDetector(tracker *ScoreTracker, deduper *Deduper, logger zerolog.Logger) *Detector {
	return &Detector{
		tracker: tracker,
		deduper: deduper,
		logger:  logger.With().Str("component", "detector").Logger(),
	}
}

// Detect runs one evaluation pass: every bet of every non-terminal ticket
// is checked against the match snapshot, producing events in ticket/bet
// iteration order. A malformed record skips that record only, never the
// whole pass.
func (d *Detector) Detect(matches []models.Match, tickets []models.Ticket) []Event {
	byID := make(map[string]*models.Match, len(matches))
	for i := range matches {
		byID[matches[i].Key()] = &matches[i]
	}

	var events []Event
	for _, ticket := range tickets {
		if ticket.IsTerminal() {
			continue
		}
		for _, bet := range ticket.Bets {
			if bet.MatchID == "" {
				continue
			}
			match, ok := byID[bet.MatchID]
			if !ok {
				// Match absent from this snapshot: no information
				// this cycle, not an error.
				continue
			}
			events = append(events, d.inspect(match, bet)...)
		}
	}

	return events
}

// inspect checks a single (match, bet) pair for kickoff, goal and final
// whistle transitions.
func (d *Detector) inspect(match *models.Match, bet models.Bet) []Event {
	matchID := match.Key()
	home, away := match.HomeScore(), match.AwayScore()

	var events []Event

	if match.IsLive() && d.deduper.TryEmit(StartedKey(matchID)) {
		d.logger.Info().
			Str("match_id", matchID).
			Str("home", match.HomeName()).
			Str("away", match.AwayName()).
			Msg("match started")
		events = append(events, Event{
			Type:      EventKickoff,
			MatchID:   matchID,
			HomeTeam:  match.HomeName(),
			AwayTeam:  match.AwayName(),
			HomeScore: home,
			AwayScore: away,
		})
	}

	// The stored score is overwritten every observation, goal or not, so
	// the next cycle's delta starts from this snapshot.
	prevHome, prevAway := d.tracker.Observe(matchID, home, away)

	if match.IsInProgress() {
		// A multi-goal jump within one polling interval collapses into a
		// single event attributed home-first; the poll granularity cannot
		// distinguish the individual goals.
		scorer := ""
		switch {
		case home > prevHome:
			scorer = ScorerHome
		case away > prevAway:
			scorer = ScorerAway
		}
		if scorer != "" && d.deduper.TryEmit(GoalKey(matchID, home, away)) {
			d.logger.Info().
				Str("match_id", matchID).
				Str("scorer", scorer).
				Int("home_score", home).
				Int("away_score", away).
				Msg("goal detected")
			events = append(events, Event{
				Type:      EventGoal,
				MatchID:   matchID,
				HomeTeam:  match.HomeName(),
				AwayTeam:  match.AwayName(),
				HomeScore: home,
				AwayScore: away,
				Scorer:    scorer,
			})
		}
	}

	if match.IsFinished() && d.deduper.TryEmit(FinishedKey(matchID)) {
		won := Evaluate(bet.Selection, home, away)
		d.logger.Info().
			Str("match_id", matchID).
			Str("selection", bet.Selection).
			Int("home_score", home).
			Int("away_score", away).
			Bool("won", won).
			Msg("match finished, bet settled")
		events = append(events, Event{
			Type:      EventFinished,
			MatchID:   matchID,
			HomeTeam:  match.HomeName(),
			AwayTeam:  match.AwayName(),
			HomeScore: home,
			AwayScore: away,
			Won:       won,
		})
	}

	return events
}
