package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a fighter's body in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Reach is the probe used to gather attack candidates from the space.
var Reach = donburi.NewComponentType[ObjectData]()

// Space is the arena's collision grid.
var Space = donburi.NewComponentType[resolv.Space]()
