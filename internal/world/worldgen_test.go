package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldGenerationDeterminism(t *testing.T) {
	a := NewWorldScaleGenerator(12345).GenerateCompleteWorld()
	b := NewWorldScaleGenerator(12345).GenerateCompleteWorld()

	assert.Equal(t, a.ID, b.ID, "идентификатор карты должен быть детерминированным")
	assert.Equal(t, a.Plates, b.Plates, "плиты должны совпадать побитово")
	assert.Equal(t, a.tiles, b.tiles, "тайлы должны совпадать побитово")
}

func TestWorldGenerationSeedVariation(t *testing.T) {
	a := NewWorldScaleGenerator(1).GenerateCompleteWorld()
	b := NewWorldScaleGenerator(2).GenerateCompleteWorld()

	assert.NotEqual(t, a.tiles, b.tiles, "разные сиды должны давать разные миры")
}

func TestWorldMapDimensions(t *testing.T) {
	m := NewWorldScaleGenerator(42).GenerateCompleteWorld()

	assert.Equal(t, WorldWidth, m.Width)
	assert.Equal(t, WorldHeight, m.Height)
	assert.Len(t, m.Plates, numPlates, "должно быть создано 12 плит")

	tile, ok := m.Tile(WorldWidth-1, WorldHeight-1)
	require.True(t, ok)
	assert.Equal(t, WorldWidth-1, tile.X)
	assert.Equal(t, WorldHeight-1, tile.Y)
}

func TestWorldTileBounds(t *testing.T) {
	m := NewWorldScaleGenerator(7).GenerateCompleteWorld()

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {WorldWidth, 0}, {0, WorldHeight}} {
		tile, ok := m.Tile(c[0], c[1])
		assert.Nil(t, tile, "тайл за границей должен быть nil")
		assert.False(t, ok)
	}
}

func TestLandSeaPartition(t *testing.T) {
	m := NewWorldScaleGenerator(12345).GenerateCompleteWorld()

	land := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile, _ := m.Tile(x, y)

			// Суша и море определяются строго уровнем моря
			assert.Equal(t, tile.FinalElevation > 0, tile.IsLand,
				"признак суши должен следовать из высоты в (%d,%d)", x, y)

			// Водные биомы только на море, сухопутные только на суше
			if tile.IsLand {
				land++
				assert.False(t, tile.Biome.IsWater(),
					"сухопутный тайл (%d,%d) получил водный биом %s", x, y, tile.Biome)
			} else {
				assert.True(t, tile.Biome.IsWater(),
					"морской тайл (%d,%d) получил сухопутный биом %s", x, y, tile.Biome)
			}
		}
	}

	total := m.Width * m.Height
	assert.Greater(t, land, 0, "в мире должна быть суша")
	assert.Less(t, land, total, "в мире должен быть океан")
}

func TestDeepOceanPresence(t *testing.T) {
	m := NewWorldScaleGenerator(12345).GenerateCompleteWorld()

	deep := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile, _ := m.Tile(x, y)
			if tile.Biome == BiomeDeepOcean {
				deep++
				assert.Less(t, tile.FinalElevation, -2000.0,
					"глубокий океан в (%d,%d) должен лежать ниже -2000", x, y)
			}
		}
	}

	assert.Greater(t, deep, 0, "абиссальное дно должно присутствовать в мире")
	assert.Less(t, deep, m.Width*m.Height, "мир не может состоять из одного глубокого океана")
}

func TestClimateRanges(t *testing.T) {
	m := NewWorldScaleGenerator(99).GenerateCompleteWorld()

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile, _ := m.Tile(x, y)
			assert.GreaterOrEqual(t, tile.Temperature, 0.0)
			assert.LessOrEqual(t, tile.Temperature, 1.0)
			assert.GreaterOrEqual(t, tile.Precipitation, 0.0)
			assert.LessOrEqual(t, tile.Precipitation, 1.0)
			assert.GreaterOrEqual(t, tile.SeasonalVariation, 0.2, "минимальная сезонность на побережье")
			assert.LessOrEqual(t, tile.SeasonalVariation, 0.7, "максимальная сезонность вглуби материка")
		}
	}
}

func TestClimateZoneLatitudeBands(t *testing.T) {
	m := NewWorldScaleGenerator(5).GenerateCompleteWorld()

	// Экваториальная строка всегда тропическая, полярная — полярная
	equator, _ := m.Tile(10, WorldHeight/2)
	assert.Equal(t, ClimateTropical, equator.Zone)

	pole, _ := m.Tile(10, 0)
	assert.Equal(t, ClimatePolar, pole.Zone)
}

func TestMajorRiverCap(t *testing.T) {
	m := NewWorldScaleGenerator(12345).GenerateCompleteWorld()

	rivers := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile, _ := m.Tile(x, y)
			if tile.HasMajorRiver {
				rivers++
				assert.True(t, tile.IsLand, "исток реки должен быть на суше")
				assert.Greater(t, tile.RiverID, 0, "река должна иметь идентификатор")
			} else {
				assert.Equal(t, 0, tile.RiverID)
			}
		}
	}
	assert.LessOrEqual(t, rivers, numMajorRivers, "рек не больше лимита")
}

func TestGetNeighboringWorldTiles(t *testing.T) {
	gen := NewWorldScaleGenerator(3)
	gen.GenerateCompleteWorld()

	// Угловой сектор имеет ровно трех соседей
	corner := gen.GetNeighboringWorldTiles(0, 0)
	assert.Len(t, corner, 3)
	assert.Contains(t, corner, DirEast)
	assert.Contains(t, corner, DirSouth)
	assert.Contains(t, corner, DirSoutheast)

	// Внутренний сектор — всех восьмерых
	inner := gen.GetNeighboringWorldTiles(10, 10)
	assert.Len(t, inner, 8)
}

func TestWorldDisplayAssigned(t *testing.T) {
	m := NewWorldScaleGenerator(11).GenerateCompleteWorld()

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile, _ := m.Tile(x, y)
			assert.NotEqual(t, rune(0), tile.Char, "каждый тайл должен получить символ")
		}
	}
}
