package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grasslandParent возвращает типовой сухопутный сектор для тестов
func grasslandParent() *WorldTile {
	return &WorldTile{
		X: 10, Y: 20,
		Biome:          BiomeGrassland,
		IsLand:         true,
		FinalElevation: 350,
		Temperature:    0.55,
		Precipitation:  0.45,
		Zone:           ClimateTemperate,
	}
}

func TestRegionalGenerationDeterminism(t *testing.T) {
	gen := NewRegionalScaleGenerator(12345)

	a := gen.GenerateRegionalMap(grasslandParent(), nil)
	b := gen.GenerateRegionalMap(grasslandParent(), nil)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.tiles, b.tiles, "одинаковый сектор должен давать одинаковую карту")
}

func TestRegionalGenerationParentVariation(t *testing.T) {
	gen := NewRegionalScaleGenerator(12345)

	a := gen.GenerateRegionalMap(grasslandParent(), nil)

	other := grasslandParent()
	other.X = 11
	b := gen.GenerateRegionalMap(other, nil)

	assert.NotEqual(t, a.tiles, b.tiles, "соседние сектора не должны совпадать")
}

func TestRegionalGrasslandSubtypes(t *testing.T) {
	gen := NewRegionalScaleGenerator(777)
	m := gen.GenerateRegionalMap(grasslandParent(), nil)

	// Без крупной реки и соседей подтипы ограничены набором степи
	// плюс вода от озер и малых рек
	allowed := map[TerrainSubtype]bool{
		TerrainPlains:       true,
		TerrainRollingHills: true,
		TerrainMeadows:      true,
		TerrainShrubland:    true,
		TerrainDeepWater:    true,
		TerrainShallowWater: true,
	}

	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile, ok := m.Tile(x, y)
			require.True(t, ok)
			assert.True(t, allowed[tile.Terrain],
				"подтип %s недопустим для степи в (%d,%d)", tile.Terrain, x, y)
			assert.Equal(t, BiomeGrassland, tile.ParentBiome)
			assert.False(t, tile.BiomeEdge, "без соседей не должно быть границ биомов")
		}
	}
}

func TestRegionalTileBounds(t *testing.T) {
	gen := NewRegionalScaleGenerator(1)
	m := gen.GenerateRegionalMap(grasslandParent(), nil)

	tile, ok := gen.GetRegionalTile(m, -1, 0)
	assert.Nil(t, tile)
	assert.False(t, ok)

	tile, ok = gen.GetRegionalTile(m, RegionSize, RegionSize)
	assert.Nil(t, tile)
	assert.False(t, ok)

	tile, ok = gen.GetRegionalTile(nil, 0, 0)
	assert.Nil(t, tile, "nil карта не должна паниковать")
	assert.False(t, ok)
}

func TestRegionalTileProperties(t *testing.T) {
	gen := NewRegionalScaleGenerator(555)
	m := gen.GenerateRegionalMap(grasslandParent(), nil)

	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile, _ := m.Tile(x, y)

			assert.GreaterOrEqual(t, tile.Fertility, 0.0)
			assert.LessOrEqual(t, tile.Fertility, 1.0)
			assert.GreaterOrEqual(t, tile.Accessibility, 0.0)
			assert.LessOrEqual(t, tile.Accessibility, 1.0)

			// Озерные тайлы всегда водные
			if tile.LakeID != 0 {
				assert.True(t, tile.IsWater(), "озерный тайл (%d,%d) должен быть водным", x, y)
			}

			// Размер реки только на речных тайлах, полноводные реки
			// размера 3 генератор пока не создает
			if tile.HasMinorRiver {
				assert.GreaterOrEqual(t, tile.RiverSize, 1)
				assert.LessOrEqual(t, tile.RiverSize, 2)
			} else {
				assert.Equal(t, 0, tile.RiverSize)
			}
		}
	}
}

func TestRegionalEdgeBlending(t *testing.T) {
	gen := NewRegionalScaleGenerator(42)

	neighbors := map[Direction]*WorldTile{
		DirNorth: {X: 10, Y: 19, Biome: BiomeTemperateForest, IsLand: true},
	}
	m := gen.GenerateRegionalMap(grasslandParent(), neighbors)

	// Переходные тайлы могут появляться только в полосе у северного края
	for y := edgeInfluenceDistance; y < RegionSize-edgeInfluenceDistance; y++ {
		for x := edgeInfluenceDistance; x < RegionSize-edgeInfluenceDistance; x++ {
			tile, _ := m.Tile(x, y)
			assert.False(t, tile.BiomeEdge,
				"внутренний тайл (%d,%d) не должен быть границей биома", x, y)
		}
	}
}

func TestRegionalWetlandFloodplain(t *testing.T) {
	gen := NewRegionalScaleGenerator(12345)

	parent := grasslandParent()
	parent.HasMajorRiver = true
	parent.RiverID = 1
	m := gen.GenerateRegionalMap(parent, nil)

	// У крупной реки часть степи превращается в пойму
	floodplains := 0
	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile, _ := m.Tile(x, y)
			if tile.Terrain == TerrainFloodplain {
				floodplains++
			}
		}
	}
	assert.Greater(t, floodplains, 0, "сектор с крупной рекой должен иметь пойму")
}

func TestRegionalTerrainBoundaries(t *testing.T) {
	gen := NewRegionalScaleGenerator(8)
	m := gen.GenerateRegionalMap(grasslandParent(), nil)

	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile, _ := m.Tile(x, y)

			// Пересчитываем границу вручную и сверяем
			expected := false
			for dy := -1; dy <= 1 && !expected; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if n, ok := m.Tile(x+dx, y+dy); ok && n.Terrain != tile.Terrain {
						expected = true
						break
					}
				}
			}
			assert.Equal(t, expected, tile.TerrainBoundary,
				"граница рельефа в (%d,%d) посчитана неверно", x, y)
		}
	}
}
