package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/engine/world"
)

// Scoring rules
const (
	StartingScore = 100
	MoveCost      = 1
	WallPenalty   = 10
	HintCost      = 3
)

const maxMessages = 5

// Session represents one treasure hunt on a loaded map
type Session struct {
	ID      uuid.UUID
	MapName string

	Grid   *world.Grid
	Player world.Position

	Score          int
	TreasuresFound int
	TreasuresTotal int

	// Hint is the suggested next step, nil when none is shown
	Hint *world.Position

	Messages []string

	Complete bool
	Quit     bool

	StartTime time.Time
	EndTime   time.Time
}

// NewSession creates a session on grid, which must hold exactly one player
func NewSession(grid *world.Grid, mapName string) (*Session, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	player, _ := grid.Player()

	s := &Session{
		ID:             uuid.New(),
		MapName:        mapName,
		Grid:           grid,
		Player:         player,
		Score:          StartingScore,
		TreasuresTotal: grid.Count(world.Treasure),
		Messages:       make([]string, 0),
		StartTime:      time.Now(),
	}
	grid.Reveal(player)
	return s, nil
}

// Log returns a logger tagged with the session id
func (s *Session) Log() *log.Entry {
	return log.WithFields(log.Fields{"session": s.ID.String(), "map": s.MapName})
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// SetHint marks p as the suggested next step
func (s *Session) SetHint(p world.Position) {
	s.Hint = &p
	s.Grid.Reveal(p)
}

// ClearHint removes the hint marker
func (s *Session) ClearHint() {
	s.Hint = nil
}

// IsHint reports whether p carries the hint marker
func (s *Session) IsHint(p world.Position) bool {
	return s.Hint != nil && *s.Hint == p
}

// Remaining returns the number of treasures still on the map
func (s *Session) Remaining() int {
	return s.TreasuresTotal - s.TreasuresFound
}

// Finish stops the clock and marks the hunt complete
func (s *Session) Finish() {
	if s.Complete {
		return
	}
	s.Complete = true
	s.EndTime = time.Now()
}

// Elapsed returns the play time, frozen once the hunt is complete
func (s *Session) Elapsed() time.Duration {
	if s.Complete {
		return s.EndTime.Sub(s.StartTime)
	}
	return time.Since(s.StartTime)
}

// FormatElapsed renders a duration as mm:ss
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
