package components

import "github.com/yohamta/donburi"

// WaveData is the wave counter, score and the recently defeated enemies
// that stay on screen as fallen bodies.
type WaveData struct {
	Wave  int
	Score int

	// Defeated is oldest first and never longer than MaxDefeated.
	Defeated    []donburi.Entity
	MaxDefeated int
}

var Wave = donburi.NewComponentType[WaveData]()

// Clear scores the current wave and advances to the next one. It returns
// the wave that was cleared and the points awarded.
func (w *WaveData) Clear(pointsPerWave int) (cleared, points int) {
	cleared = w.Wave
	points = pointsPerWave * cleared
	w.Score += points
	w.Wave++
	return cleared, points
}

// PushDefeated records a fallen enemy and returns whichever entries fell
// off the front of the history.
func (w *WaveData) PushDefeated(e donburi.Entity) []donburi.Entity {
	w.Defeated = append(w.Defeated, e)
	if w.MaxDefeated <= 0 || len(w.Defeated) <= w.MaxDefeated {
		return nil
	}
	n := len(w.Defeated) - w.MaxDefeated
	evicted := append([]donburi.Entity(nil), w.Defeated[:n]...)
	w.Defeated = append(w.Defeated[:0], w.Defeated[n:]...)
	return evicted
}
