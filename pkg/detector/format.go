package detector

import (
	"fmt"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// Payload type values carried in the notification data map
const (
	PayloadStarted = "started"
	PayloadGoal    = "goal"
	PayloadWon     = "won"
	PayloadLost    = "lost"
)

// PayloadType maps an event to the type string clients receive
func (e Event) PayloadType() string {
	switch e.Type {
	case EventKickoff:
		return PayloadStarted
	case EventGoal:
		return PayloadGoal
	case EventFinished:
		if e.Won {
			return PayloadWon
		}
		return PayloadLost
	}
	return ""
}

// Format renders a detected event into the push notification payload.
// The title patterns and data fields are a client contract; do not change
// them without versioning the app.
func Format(e Event) models.Notification {
	data := map[string]string{
		"matchId": e.MatchID,
		"type":    e.PayloadType(),
	}

	switch e.Type {
	case EventGoal:
		data["scorer"] = e.Scorer
		team := e.HomeTeam
		if e.Scorer == ScorerAway {
			team = e.AwayTeam
		}
		return models.Notification{
			Title: fmt.Sprintf("Goal by %s!", team),
			Body:  fmt.Sprintf("Score: %d - %d", e.HomeScore, e.AwayScore),
			Data:  data,
		}

	case EventFinished:
		title := fmt.Sprintf("You lost: %s vs %s", e.HomeTeam, e.AwayTeam)
		if e.Won {
			title = fmt.Sprintf("You won! %s vs %s", e.HomeTeam, e.AwayTeam)
		}
		return models.Notification{
			Title: title,
			Body:  fmt.Sprintf("Final score: %d - %d", e.HomeScore, e.AwayScore),
			Data:  data,
		}

	default:
		return models.Notification{
			Title: fmt.Sprintf("Match started: %s vs %s", e.HomeTeam, e.AwayTeam),
			Body:  "Your bet is in play",
			Data:  data,
		}
	}
}
