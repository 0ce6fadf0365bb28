package domain

// MatchStatus is the closed set of match states
type MatchStatus string

const (
	StatusLive     MatchStatus = "Live"
	StatusFinished MatchStatus = "Finished"
	StatusUpcoming MatchStatus = "Upcoming"
)

// Valid reports whether s is one of the three match states
func (s MatchStatus) Valid() bool {
	return s == StatusLive || s == StatusFinished || s == StatusUpcoming
}

// MatchScore Model
type MatchScore struct {
	ID     string        `json:"id"`      // Opaque identifier
	Sport  SportCategory `json:"sport"`   // Sport being played
	TeamA  string        `json:"team_a"`  // Home side or first player
	TeamB  string        `json:"team_b"`  // Away side or second player
	ScoreA int           `json:"score_a"` // Non-negative
	ScoreB int           `json:"score_b"` // Non-negative
	Status MatchStatus   `json:"status"`  // Live, Finished or Upcoming
	Time   string        `json:"time"`    // Free-form label such as 75' or FT
}
