package components

import "github.com/yohamta/donburi"

// ClockData counts simulation ticks. Phase is the cosmetic accumulator
// used for idle animation; it only moves when the simulation does.
type ClockData struct {
	Ticks int
	Phase float64
}

var Clock = donburi.NewComponentType[ClockData]()
