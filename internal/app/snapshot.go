// internal/app/snapshot.go
package app

import (
	"hexnav/internal/config"
	"hexnav/pkg/hexmap"
	"hexnav/pkg/vmath"
)

// Snapshot — неизменяемый срез состояния сессии после кадра.
// Снимок никогда не меняется после публикации.
type Snapshot struct {
	Tick     uint64                 `json:"tick"`
	Mode     config.InteractionMode `json:"mode"`
	Actor    ActorState             `json:"actor"`
	Blocked  []hexmap.Hex           `json:"blocked"`
	Path     []hexmap.Hex           `json:"path"`
	LastPick *hexmap.Hex            `json:"last_pick,omitempty"`
}

type ActorState struct {
	Present  bool       `json:"present"`
	Position vmath.Vec3 `json:"position"`
	Heading  float64    `json:"heading"`
	Hex      hexmap.Hex `json:"hex"`
	Moving   bool       `json:"moving"`
}

func (s *Session) publish() *Snapshot {
	snap := &Snapshot{
		Tick:    s.tick,
		Mode:    s.Picks.Mode(),
		Blocked: s.Grid.BlockedCells(),
		Path:    s.Grid.PathHexes(),
	}
	if pos, heading, ok := s.ActorPlacement(); ok {
		h, _ := s.ActorHex()
		snap.Actor = ActorState{
			Present:  true,
			Position: pos,
			Heading:  heading,
			Hex:      h,
			Moving:   s.Movement.Active() || s.Grid.HasPath(),
		}
	}
	if last, ok := s.Picks.LastPick(); ok {
		snap.LastPick = &last
	}
	s.snapshot.Store(snap)
	return snap
}
