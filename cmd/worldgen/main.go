package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/russell-pier/covenant-blood-fire-sub000/internal/config"
	"github.com/russell-pier/covenant-blood-fire-sub000/internal/logging"
	"github.com/russell-pier/covenant-blood-fire-sub000/internal/world"
)

func main() {
	configPath := flag.String("config", "", "Путь к YAML файлу конфигурации")
	flag.Parse()

	if err := logging.Init("worldgen"); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка инициализации логирования: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("Ошибка загрузки конфигурации: %v", err)
		os.Exit(1)
	}

	seed := config.ResolveSeed(cfg)
	logging.Info("Запуск генерации мира с сидом %d", seed)

	gen := world.NewWorldScaleGenerator(seed)
	worldMap := gen.GenerateCompleteWorld()

	printWorldStats(worldMap)

	// Спускаемся на два уровня вниз на первом сухопутном секторе
	if tile, ok := findFirstLandTile(worldMap); ok {
		drillDown(gen, seed, tile)
	} else {
		logging.Warn("Суша не найдена, детализация пропущена")
	}
}

// printWorldStats печатает сводку по сгенерированному миру
func printWorldStats(m *world.WorldMap) {
	total := m.Width * m.Height
	land := 0
	rivers := 0
	biomeCounts := make(map[world.BiomeType]int)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile, _ := m.Tile(x, y)
			if tile.IsLand {
				land++
			}
			if tile.HasMajorRiver {
				rivers++
			}
			biomeCounts[tile.Biome]++
		}
	}

	logging.Info("Карта %s: %d тайлов, суша %d (%.1f%%), океан %d (%.1f%%), рек %d, плит %d",
		m.ID, total,
		land, float64(land)/float64(total)*100,
		total-land, float64(total-land)/float64(total)*100,
		rivers, len(m.Plates))

	// Биомы по убыванию площади
	type biomeCount struct {
		biome world.BiomeType
		count int
	}
	counts := make([]biomeCount, 0, len(biomeCounts))
	for biome, count := range biomeCounts {
		counts = append(counts, biomeCount{biome, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].biome < counts[j].biome
	})

	logging.Info("Распределение биомов:")
	for _, bc := range counts {
		logging.Info("  %s: %d (%.1f%%)", bc.biome, bc.count,
			float64(bc.count)/float64(total)*100)
	}
}

// findFirstLandTile возвращает первый сухопутный сектор в строчном порядке
func findFirstLandTile(m *world.WorldMap) (*world.WorldTile, bool) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if tile, _ := m.Tile(x, y); tile.IsLand {
				return tile, true
			}
		}
	}
	return nil, false
}

// drillDown генерирует региональную карту сектора и локальный чанк ее центра
func drillDown(gen *world.WorldScaleGenerator, seed int64, tile *world.WorldTile) {
	logging.Info("Детализация сектора (%d,%d), биом %s", tile.X, tile.Y, tile.Biome)

	regGen := world.NewRegionalScaleGenerator(seed)
	neighbors := gen.GetNeighboringWorldTiles(tile.X, tile.Y)
	regionalMap := regGen.GenerateRegionalMap(tile, neighbors)

	center, _ := regionalMap.Tile(world.RegionSize/2, world.RegionSize/2)
	logging.Info("Центральный блок: рельеф %s, плодородие %.2f, проходимость %.2f",
		center.Terrain, center.Fertility, center.Accessibility)

	localGen := world.NewLocalScaleGenerator(seed)
	chunk := localGen.GenerateLocalChunk(center, regionalNeighbors(regionalMap, center))

	resources := 0
	spawns := 0
	for y := 0; y < world.ChunkSize; y++ {
		for x := 0; x < world.ChunkSize; x++ {
			lt, _ := chunk.Tile(x, y)
			if lt.HasResource() {
				resources++
			}
			if lt.HasSpawn() {
				spawns++
			}
		}
	}
	logging.Info("Локальный чанк %s: %d тайлов с ресурсами, %d точек появления животных",
		chunk.ID, resources, spawns)
}

// regionalNeighbors собирает четырех основных соседей блока
func regionalNeighbors(m *world.RegionalMap, tile *world.RegionalTile) map[world.Direction]*world.RegionalTile {
	neighbors := make(map[world.Direction]*world.RegionalTile)
	for _, dir := range []world.Direction{world.DirNorth, world.DirSouth, world.DirEast, world.DirWest} {
		dx, dy := dir.Offset()
		if n, ok := m.Tile(tile.X+dx, tile.Y+dy); ok {
			neighbors[dir] = n
		}
	}
	return neighbors
}
