package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/russell-pier/covenant-blood-fire-sub000/internal/vec"
)

func TestCoordinateRoundTrip(t *testing.T) {
	// Полный трёхуровневый адрес должен восстанавливаться из абсолютных метров
	local := LocalCoordinate{
		SectorX: 5, SectorY: 7,
		BlockX: 12, BlockY: 31,
		MeterX: 3, MeterY: 17,
	}

	abs := local.ToAbsolute()
	restored := abs.ToLocal()

	assert.Equal(t, local, restored, "локальные координаты должны восстанавливаться без потерь")
}

func TestCoordinateHierarchy(t *testing.T) {
	abs := AbsoluteCoordinate{Pos: vec.Vec2{X: 5*MetersPerSector + 12*MetersPerBlock + 3, Y: 7*MetersPerSector + 31*MetersPerBlock + 17}}

	worldCoord := abs.ToWorld()
	assert.Equal(t, 5, worldCoord.SectorX)
	assert.Equal(t, 7, worldCoord.SectorY)

	regional := abs.ToRegional()
	assert.Equal(t, 12, regional.BlockX)
	assert.Equal(t, 31, regional.BlockY)

	local := abs.ToLocal()
	assert.Equal(t, 3, local.MeterX)
	assert.Equal(t, 17, local.MeterY)
}

func TestWorldCoordinateToAbsolute(t *testing.T) {
	w := WorldCoordinate{SectorX: 2, SectorY: 3}
	abs := w.ToAbsolute()

	assert.Equal(t, 2*MetersPerSector, abs.Pos.X, "сектор должен начинаться на границе 1024 метров")
	assert.Equal(t, 3*MetersPerSector, abs.Pos.Y)
}

func TestCoordinateValidation(t *testing.T) {
	assert.True(t, IsValidWorldCoord(WorldCoordinate{SectorX: 0, SectorY: 0}))
	assert.True(t, IsValidWorldCoord(WorldCoordinate{SectorX: WorldWidth - 1, SectorY: WorldHeight - 1}))
	assert.False(t, IsValidWorldCoord(WorldCoordinate{SectorX: WorldWidth, SectorY: 0}), "сектор за восточной границей")
	assert.False(t, IsValidWorldCoord(WorldCoordinate{SectorX: 0, SectorY: -1}), "сектор за северной границей")

	assert.True(t, IsValidRegionalCoord(RegionalCoordinate{SectorX: 1, SectorY: 1, BlockX: 31, BlockY: 0}))
	assert.False(t, IsValidRegionalCoord(RegionalCoordinate{SectorX: 1, SectorY: 1, BlockX: 32, BlockY: 0}))

	assert.True(t, IsValidLocalCoord(LocalCoordinate{SectorX: 0, SectorY: 0, BlockX: 0, BlockY: 0, MeterX: 31, MeterY: 31}))
	assert.False(t, IsValidLocalCoord(LocalCoordinate{SectorX: 0, SectorY: 0, BlockX: 0, BlockY: 0, MeterX: -1, MeterY: 0}))
}
