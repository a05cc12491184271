package components

import "github.com/yohamta/donburi"

// SnapshotData is everything the renderers need for one frame, captured at
// the end of each update. Fighter slices alias live state and are only
// valid until the next update.
type SnapshotData struct {
	Ticks int
	Phase float64

	Player    FighterData
	HasPlayer bool
	Enemy     FighterData
	HasEnemy  bool
	Defeated  []FighterData

	Wave  int
	Score int

	GameOver bool
	Paused   bool

	Banner      string
	BannerAlpha float32

	Hint string
}

var Snapshot = donburi.NewComponentType[SnapshotData]()
