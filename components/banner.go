package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the centered announcement shown between waves.
type BannerData struct {
	Text  string
	Alpha float32
	Tween *gween.Sequence
}

var Banner = donburi.NewComponentType[BannerData]()

// Active reports whether there is a banner still fading.
func (b *BannerData) Active() bool {
	return b.Tween != nil
}
