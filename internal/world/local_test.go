package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainsParent возвращает типовой равнинный блок для тестов
func plainsParent() *RegionalTile {
	return &RegionalTile{
		X: 3, Y: 4,
		Terrain:        TerrainPlains,
		ParentBiome:    BiomeGrassland,
		MicroElevation: 5.0,
		Fertility:      0.7,
		Accessibility:  0.9,
	}
}

func TestLocalGenerationDeterminism(t *testing.T) {
	gen := NewLocalScaleGenerator(12345)

	a := gen.GenerateLocalChunk(plainsParent(), nil)
	b := gen.GenerateLocalChunk(plainsParent(), nil)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.tiles, b.tiles, "одинаковый блок должен давать одинаковый чанк")
}

func TestLocalGenerationParentVariation(t *testing.T) {
	gen := NewLocalScaleGenerator(12345)

	a := gen.GenerateLocalChunk(plainsParent(), nil)

	other := plainsParent()
	other.X = 4
	b := gen.GenerateLocalChunk(other, nil)

	assert.NotEqual(t, a.tiles, b.tiles, "соседние блоки не должны совпадать")
}

func TestLocalPlainsSubTerrain(t *testing.T) {
	gen := NewLocalScaleGenerator(777)
	chunk := gen.GenerateLocalChunk(plainsParent(), nil)

	// Без реки и соседей поверхности ограничены набором равнины
	allowed := map[LocalTerrain]bool{
		LocalGrassPatch: true,
		LocalShortGrass: true,
		LocalBareEarth:  true,
		LocalDirtPath:   true,
	}

	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile, ok := chunk.Tile(x, y)
			require.True(t, ok)
			assert.True(t, allowed[tile.Terrain],
				"поверхность %s недопустима для равнины в (%d,%d)", tile.Terrain, x, y)
			assert.Equal(t, TerrainPlains, tile.ParentTerrain,
				"тайл должен помнить рельеф родительского блока")
		}
	}
}

func TestLocalRiverWater(t *testing.T) {
	gen := NewLocalScaleGenerator(12345)

	parent := plainsParent()
	parent.HasMinorRiver = true
	parent.RiverSize = 2
	chunk := gen.GenerateLocalChunk(parent, nil)

	water := 0
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile, _ := chunk.Tile(x, y)
			if tile.IsWater() {
				water++
			}
		}
	}
	assert.Greater(t, water, 0, "блок с рекой должен содержать воду")
}

func TestLocalTileBounds(t *testing.T) {
	gen := NewLocalScaleGenerator(1)
	chunk := gen.GenerateLocalChunk(plainsParent(), nil)

	tile, ok := gen.GetLocalTile(chunk, -1, 0)
	assert.Nil(t, tile)
	assert.False(t, ok)

	tile, ok = gen.GetLocalTile(chunk, ChunkSize, 0)
	assert.Nil(t, tile)
	assert.False(t, ok)

	tile, ok = gen.GetLocalTile(nil, 0, 0)
	assert.Nil(t, tile, "nil чанк не должен паниковать")
	assert.False(t, ok)
}

func TestLocalTileProperties(t *testing.T) {
	gen := NewLocalScaleGenerator(555)
	chunk := gen.GenerateLocalChunk(plainsParent(), nil)

	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile, _ := chunk.Tile(x, y)

			assert.GreaterOrEqual(t, tile.MovementCost, 0.8, "тропа — самый быстрый путь")
			assert.LessOrEqual(t, tile.MovementCost, 3.0, "стоимость движения ограничена сверху")
			assert.GreaterOrEqual(t, tile.Concealment, 0.0)
			assert.LessOrEqual(t, tile.Concealment, 1.0)

			// Нижние уровни пока закрыты
			assert.False(t, tile.CanAccessLowerLevel)

			// Ресурс всегда приходит с количеством
			if tile.Resource != ResourceNone {
				assert.Greater(t, tile.ResourceQuantity, 0,
					"ресурс на (%d,%d) должен иметь количество", x, y)
			} else {
				assert.Equal(t, 0, tile.ResourceQuantity)
			}

			// Частота появления только в зонах животных
			if tile.Spawn == SpawnNone {
				assert.Zero(t, tile.SpawnFrequency)
				assert.Zero(t, tile.MaxAnimals)
			} else {
				assert.Greater(t, tile.MaxAnimals, 0)
			}
		}
	}
}

func TestLocalZLevelStructure(t *testing.T) {
	gen := NewLocalScaleGenerator(99)

	parent := plainsParent()
	parent.Terrain = TerrainDenseForest
	parent.ParentBiome = BiomeTemperateForest
	chunk := gen.GenerateLocalChunk(parent, nil)

	trees := 0
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile, _ := chunk.Tile(x, y)

			switch tile.Terrain {
			case LocalMatureTrees:
				trees++
				assert.Equal(t, ZElevated, tile.ZLevel, "кроны деревьев на возвышенном уровне")
				assert.True(t, tile.BlocksMovement)
				assert.True(t, tile.BlocksLineOfSight)
				assert.True(t, tile.CanAccessUpperLevel)
			case LocalLeafLitter, LocalMossCovered:
				assert.Equal(t, ZSurface, tile.ZLevel)
				assert.False(t, tile.BlocksMovement)
			}
		}
	}
	assert.Greater(t, trees, 0, "густой лес должен содержать взрослые деревья")
}

func TestLocalResourceClusters(t *testing.T) {
	gen := NewLocalScaleGenerator(12345)

	// Зона концентрации повышает вероятность скоплений
	parent := plainsParent()
	parent.Terrain = TerrainDenseForest
	parent.ParentBiome = BiomeTemperateForest
	parent.Resource = ConcentrationWoodGrove
	chunk := gen.GenerateLocalChunk(parent, nil)

	resources := 0
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile, _ := chunk.Tile(x, y)
			if tile.HasResource() {
				resources++
			}
		}
	}
	assert.Greater(t, resources, 0, "лесной блок с рощей должен содержать ресурсы")
}

func TestLocalRespawnTimes(t *testing.T) {
	gen := NewLocalScaleGenerator(321)

	parent := plainsParent()
	parent.Terrain = TerrainMeadows
	chunk := gen.GenerateLocalChunk(parent, nil)

	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile, _ := chunk.Tile(x, y)

			switch tile.Resource {
			case ResourceBerries:
				assert.Equal(t, 7, tile.ResourceRespawnTime)
			case ResourceHerbs:
				assert.Equal(t, 14, tile.ResourceRespawnTime)
			case ResourceStones, ResourceFlint, ResourceIronOre:
				assert.Equal(t, 0, tile.ResourceRespawnTime, "минералы не восстанавливаются")
			}
		}
	}
}
