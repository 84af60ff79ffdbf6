package components

import "github.com/yohamta/donburi"

// CorrectionState is the position corrector's per-actor state.
type CorrectionState int

const (
	// CorrectionClear means no move is pending; the live position is committed.
	CorrectionClear CorrectionState = iota
	// CorrectionProvisional means a move has been written to the live
	// position and awaits a collision verdict.
	CorrectionProvisional
)

func (s CorrectionState) String() string {
	if s == CorrectionProvisional {
		return "provisional"
	}
	return "clear"
}

// CorrectorData keeps one frame of position history so a blocked move can be
// undone exactly.
type CorrectorData struct {
	PrevX, PrevY float64
	State        CorrectionState

	Commits int
	Reverts int
}

var Corrector = donburi.NewComponentType[CorrectorData]()

// Begin starts a frame's move. The live position is saved as the previous
// position only when the last frame ended clear.
func (c *CorrectorData) Begin(f *FootprintData) {
	if c.State == CorrectionClear {
		c.PrevX, c.PrevY = f.Position()
	}
	c.State = CorrectionProvisional
}

// Resolve finishes a frame's move. A blocked move restores the previous
// position verbatim; a clear move makes the live position the new previous
// position. Returns true when the move was committed.
func (c *CorrectorData) Resolve(f *FootprintData, blocked bool) bool {
	c.State = CorrectionClear
	if blocked {
		f.SetPosition(c.PrevX, c.PrevY)
		c.Reverts++
		return false
	}
	c.PrevX, c.PrevY = f.Position()
	c.Commits++
	return true
}

// Reset commits the live position without counting a move. Used after a
// teleport such as spawning or loading a save.
func (c *CorrectorData) Reset(f *FootprintData) {
	c.PrevX, c.PrevY = f.Position()
	c.State = CorrectionClear
}
