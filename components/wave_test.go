package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestWaveClear(t *testing.T) {
	w := WaveData{Wave: 1}

	cleared, points := w.Clear(100)
	assert.Equal(t, 1, cleared)
	assert.Equal(t, 100, points)
	assert.Equal(t, 2, w.Wave)
	assert.Equal(t, 100, w.Score)

	cleared, points = w.Clear(100)
	assert.Equal(t, 2, cleared)
	assert.Equal(t, 200, points)
	assert.Equal(t, 300, w.Score)
}

func TestPushDefeatedIsBounded(t *testing.T) {
	w := WaveData{MaxDefeated: 3}

	var evicted []donburi.Entity
	for i := 1; i <= 5; i++ {
		evicted = append(evicted, w.PushDefeated(donburi.Entity(i))...)
	}

	assert.Equal(t, []donburi.Entity{3, 4, 5}, w.Defeated)
	assert.Equal(t, []donburi.Entity{1, 2}, evicted)
}

func TestPushDefeatedUnbounded(t *testing.T) {
	w := WaveData{}
	for i := 1; i <= 20; i++ {
		assert.Nil(t, w.PushDefeated(donburi.Entity(i)))
	}
	assert.Len(t, w.Defeated, 20)
}
