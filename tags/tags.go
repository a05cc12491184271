package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Defeated = donburi.NewTag().SetName("Defeated")
)

// Resolv tags for collision queries
const (
	ResolvFighter = "fighter"
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvReach   = "reach"
)
