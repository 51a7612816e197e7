package world

import (
	"math"
	"math/rand"
	"time"

	"github.com/russell-pier/covenant-blood-fire-sub000/internal/logging"
	"github.com/russell-pier/covenant-blood-fire-sub000/internal/util"
	"github.com/russell-pier/covenant-blood-fire-sub000/internal/vec"
)

// Параметры мировой генерации
const (
	numPlates      = 12 // Количество тектонических плит
	numMajorRivers = 15 // Максимум крупных речных систем

	continentalScale = 0.008 // Масштаб континентального шума
	tectonicScale    = 0.02  // Масштаб горных хребтов
	climateScale     = 0.015 // Масштаб климатических возмущений

	seaLevel = 0.0 // Уровень моря, метры
)

// WorldScaleGenerator генерирует полную карту мира 128x96 секторов.
// Один генератор — один сид; повторный вызов GenerateCompleteWorld
// с тем же генератором даёт ту же карту заново.
type WorldScaleGenerator struct {
	seed    int64
	noise   *NoiseField
	climate *util.ClimateNoise

	plates     []TectonicPlate
	boundaries map[vec.Vec2]bool
	world      *WorldMap
}

// NewWorldScaleGenerator создает генератор мирового масштаба для сида
func NewWorldScaleGenerator(seed int64) *WorldScaleGenerator {
	return &WorldScaleGenerator{
		seed:    seed,
		noise:   NewNoiseField(seed),
		climate: util.NewClimateNoise(seed),
	}
}

// GenerateCompleteWorld генерирует карту мира со всеми фазами по порядку
func (g *WorldScaleGenerator) GenerateCompleteWorld() *WorldMap {
	start := time.Now()
	defer observeGeneration("world", start)

	logging.Info("Генерация мира: сид %d, размер %dx%d", g.seed, WorldWidth, WorldHeight)

	// Свежий поток случайности на каждый запуск: генератор переиспользуем
	rng := rand.New(rand.NewSource(g.seed))

	g.world = &WorldMap{
		ID:     mapRunID("world", g.seed, 0, 0),
		Seed:   g.seed,
		Width:  WorldWidth,
		Height: WorldHeight,
		tiles:  make([]WorldTile, WorldWidth*WorldHeight),
	}

	logging.Debug("Фаза 1: тектонические плиты")
	g.generateTectonicPlates(rng)

	logging.Debug("Фаза 2: базовая высота")
	g.calculateBaseElevation()

	logging.Debug("Фаза 3: горообразование")
	g.applyMountainBuilding(rng)

	logging.Debug("Фаза 4: суша и море")
	g.determineLandSea()

	logging.Debug("Фаза 5: климатические зоны")
	g.generateClimateZones()

	logging.Debug("Фаза 6: речные системы")
	g.generateRiverSystems(rng)

	logging.Debug("Фаза 7: биомы")
	g.assignBiomes()

	logging.Debug("Фаза 8: отображение")
	g.generateDisplay()

	logging.Info("Генерация мира завершена за %v", time.Since(start))
	return g.world
}

// GetWorldTile возвращает тайл мира по координатам сектора
func (g *WorldScaleGenerator) GetWorldTile(x, y int) (*WorldTile, bool) {
	if g.world == nil {
		return nil, false
	}
	return g.world.Tile(x, y)
}

// GetNeighboringWorldTiles возвращает до восьми соседей сектора.
// Соседи за границей мира в карте отсутствуют.
func (g *WorldScaleGenerator) GetNeighboringWorldTiles(x, y int) map[Direction]*WorldTile {
	neighbors := make(map[Direction]*WorldTile)
	for _, dir := range allDirections {
		dx, dy := dir.Offset()
		if tile, ok := g.GetWorldTile(x+dx, y+dy); ok {
			neighbors[dir] = tile
		}
	}
	return neighbors
}

// Plates возвращает сгенерированные тектонические плиты
func (g *WorldScaleGenerator) Plates() []TectonicPlate {
	return g.plates
}

// generateTectonicPlates размещает плиты и раздает тайлы по Вороному
func (g *WorldScaleGenerator) generateTectonicPlates(rng *rand.Rand) {
	g.plates = make([]TectonicPlate, 0, numPlates)

	for i := 0; i < numPlates; i++ {
		// Rejection sampling: центры плит не ближе 20 секторов друг к другу
		var center vec.Vec2Float
		for attempt := 0; attempt < 50; attempt++ {
			center = vec.Vec2Float{
				X: 10 + rng.Float64()*float64(WorldWidth-20),
				Y: 10 + rng.Float64()*float64(WorldHeight-20),
			}

			tooClose := false
			for _, existing := range g.plates {
				if center.DistanceTo(existing.Center) < 20 {
					tooClose = true
					break
				}
			}
			if !tooClose {
				break
			}
		}

		plateType := PlateContinental
		if rng.Float64() < 0.7 {
			plateType = PlateOceanic
		}

		angle := rng.Float64() * 2 * math.Pi
		magnitude := 0.5 + rng.Float64()*1.5

		g.plates = append(g.plates, TectonicPlate{
			ID:     i,
			Type:   plateType,
			Center: center,
			Velocity: vec.Vec2Float{
				X: math.Cos(angle) * magnitude,
				Y: math.Sin(angle) * magnitude,
			},
			Size: 0.8 + rng.Float64()*0.7,
			Age:  rng.Float64(),
		})
	}

	// Диаграмма Вороного: каждый тайл принадлежит ближайшей плите
	for y := 0; y < WorldHeight; y++ {
		for x := 0; x < WorldWidth; x++ {
			tile := &g.world.tiles[y*WorldWidth+x]
			tile.X = x
			tile.Y = y

			pos := vec.Vec2Float{X: float64(x), Y: float64(y)}
			closest := 0
			minDist := math.Inf(1)
			for _, plate := range g.plates {
				if d := pos.DistanceTo(plate.Center); d < minDist {
					minDist = d
					closest = plate.ID
				}
			}
			tile.PlateID = closest
		}
	}

	g.world.Plates = g.plates
	g.identifyPlateBoundaries()
}

// identifyPlateBoundaries отмечает тайлы, у которых есть сосед с другой плиты
func (g *WorldScaleGenerator) identifyPlateBoundaries() {
	g.boundaries = make(map[vec.Vec2]bool)

	for y := 0; y < WorldHeight; y++ {
		for x := 0; x < WorldWidth; x++ {
			current := g.world.tiles[y*WorldWidth+x].PlateID

			for dy := -1; dy <= 1 && !g.boundaries[vec.Vec2{X: x, Y: y}]; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= WorldWidth || ny < 0 || ny >= WorldHeight {
						continue
					}
					if g.world.tiles[ny*WorldWidth+nx].PlateID != current {
						g.boundaries[vec.Vec2{X: x, Y: y}] = true
						break
					}
				}
			}
		}
	}
}

// calculateBaseElevation считает базовую высоту из континентального шума и типа плиты
func (g *WorldScaleGenerator) calculateBaseElevation() {
	for y := 0; y < WorldHeight; y++ {
		for x := 0; x < WorldWidth; x++ {
			tile := &g.world.tiles[y*WorldWidth+x]
			plate := g.plates[tile.PlateID]

			n := g.noise.OctaveNoise(
				float64(x)*continentalScale,
				float64(y)*continentalScale,
				3, 0.6,
			)

			var elevation float64
			if plate.Type == PlateContinental {
				// Континентальные плиты смещены к суше
				elevation = n*1500 + 200
			} else {
				// Океанические плиты лежат на абиссальной глубине:
				// дно заметно ниже порога глубокого океана -2000,
				// мелководье образуют только окраины и горные пояса
				elevation = n*2000 - 2600
			}

			// Плиты выше у центра и ниже к краям
			dist := vec.Vec2Float{X: float64(x), Y: float64(y)}.DistanceTo(plate.Center)
			elevation += math.Max(0, 1.0-dist/40) * 300

			tile.BaseElevation = elevation
			tile.FinalElevation = elevation
		}
	}
}

// applyMountainBuilding добавляет горы на границах плит и внутриплитные хребты.
// Границы обходим строчно по сетке: порядок важен, так как каждая граница
// тянет свой бросок из общего потока случайности.
func (g *WorldScaleGenerator) applyMountainBuilding(rng *rand.Rand) {
	for y := 0; y < WorldHeight; y++ {
		for x := 0; x < WorldWidth; x++ {
			if !g.boundaries[vec.Vec2{X: x, Y: y}] {
				continue
			}
			tile := &g.world.tiles[y*WorldWidth+x]

			first, second, ok := g.adjacentPlatePair(x, y)
			if !ok {
				continue
			}

			t1 := g.plates[first].Type
			t2 := g.plates[second].Type

			switch {
			case t1 == PlateContinental && t2 == PlateContinental:
				// Континентальная коллизия: высокие горы
				height := 1500 + rng.Float64()*2500
				tile.FinalElevation += height
				g.spreadMountains(x, y, height*0.7, 3)

			case t1 != t2:
				// Субдукция: умеренные горы
				height := 800 + rng.Float64()*1700
				tile.FinalElevation += height
				g.spreadMountains(x, y, height*0.6, 2)
			}
		}
	}

	// Внутриплитные хребты из хребтового шума
	for y := 0; y < WorldHeight; y++ {
		for x := 0; x < WorldWidth; x++ {
			ridge := g.noise.RidgeNoise(
				float64(x)*tectonicScale,
				float64(y)*tectonicScale,
				3,
			)
			if ridge > 0.7 {
				g.world.tiles[y*WorldWidth+x].FinalElevation += (ridge - 0.7) * 2000 / 0.3
			}
		}
	}
}

// adjacentPlatePair возвращает первые две различные плиты вокруг тайла.
// Порядок обхода соседей фиксирован, результат детерминирован.
func (g *WorldScaleGenerator) adjacentPlatePair(x, y int) (int, int, bool) {
	first := -1
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= WorldWidth || ny < 0 || ny >= WorldHeight {
				continue
			}
			id := g.world.tiles[ny*WorldWidth+nx].PlateID
			if first == -1 {
				first = id
			} else if id != first {
				return first, id, true
			}
		}
	}
	return 0, 0, false
}

// spreadMountains распределяет высоту по соседним тайлам с линейным затуханием
func (g *WorldScaleGenerator) spreadMountains(cx, cy int, baseHeight float64, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := cx+dx, cy+dy
			if nx < 0 || nx >= WorldWidth || ny < 0 || ny >= WorldHeight {
				continue
			}
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist <= float64(radius) {
				mult := math.Max(0, 1.0-dist/float64(radius))
				g.world.tiles[ny*WorldWidth+nx].FinalElevation += baseHeight * mult
			}
		}
	}
}

// determineLandSea отделяет сушу от моря по уровню моря
func (g *WorldScaleGenerator) determineLandSea() {
	for i := range g.world.tiles {
		g.world.tiles[i].IsLand = g.world.tiles[i].FinalElevation > seaLevel
	}
}

// generateClimateZones считает температуру, осадки и климатическую зону
func (g *WorldScaleGenerator) generateClimateZones() {
	halfHeight := float64(WorldHeight / 2)

	for y := 0; y < WorldHeight; y++ {
		for x := 0; x < WorldWidth; x++ {
			tile := &g.world.tiles[y*WorldWidth+x]

			// 0 — экватор, 1 — полюс
			latitudeFactor := math.Abs(float64(y)-halfHeight) / halfHeight

			continentality := g.calculateContinentality(x, y)

			temp := 1.0 - latitudeFactor

			// Охлаждение с высотой, только на суше
			if tile.IsLand && tile.FinalElevation > 0 {
				temp -= math.Min(0.4, tile.FinalElevation/5000)
			}

			// Климатическое возмущение из шума Перлина
			temp += g.climate.Sample(float64(x)*climateScale, float64(y)*climateScale) * 0.15
			temp = clamp01(temp)

			// Осадки: влажнее у океана, суше вглубь материка
			precip := 0.7 - continentality*0.4
			precip += g.orographicEffect(x, y)
			precip += g.climate.Sample(
				float64(x)*climateScale*1.3,
				float64(y)*climateScale*1.3,
			) * 0.2

			// Широтный пик осадков в тропиках и умеренном поясе
			latPrecip := math.Max(0.3, 1.0-math.Abs(latitudeFactor-0.4)*2)
			precip = clamp01(precip * latPrecip)

			switch {
			case latitudeFactor > 0.8:
				tile.Zone = ClimatePolar
			case latitudeFactor > 0.6:
				tile.Zone = ClimateSubpolar
			case latitudeFactor > 0.35:
				tile.Zone = ClimateTemperate
			case latitudeFactor > 0.15:
				tile.Zone = ClimateSubtropical
			default:
				tile.Zone = ClimateTropical
			}

			tile.Temperature = temp
			tile.Precipitation = precip
			tile.SeasonalVariation = 0.2 + continentality*0.5
		}
	}
}

// calculateContinentality считает удаленность от океана (0 — побережье, 1 — глубь материка)
func (g *WorldScaleGenerator) calculateContinentality(x, y int) float64 {
	minOceanDist := math.Inf(1)

	// Разреженная выборка каждые 2 тайла в радиусе 15
	for dy := -15; dy <= 15; dy += 2 {
		for dx := -15; dx <= 15; dx += 2 {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= WorldWidth || ny < 0 || ny >= WorldHeight {
				continue
			}
			if !g.world.tiles[ny*WorldWidth+nx].IsLand {
				dist := math.Sqrt(float64(dx*dx + dy*dy))
				if dist < minOceanDist {
					minOceanDist = dist
				}
			}
		}
	}

	if math.IsInf(minOceanDist, 1) {
		return 1.0
	}
	return math.Min(1.0, minOceanDist/20)
}

// orographicEffect считает влияние гор на осадки при западном ветре
func (g *WorldScaleGenerator) orographicEffect(x, y int) float64 {
	tile := &g.world.tiles[y*WorldWidth+x]
	if !tile.IsLand {
		return 0.0
	}

	effect := 0.0
	for dx := -5; dx < 0; dx++ {
		nx := x + dx
		if nx < 0 || nx >= WorldWidth {
			continue
		}
		diff := tile.FinalElevation - g.world.tiles[y*WorldWidth+nx].FinalElevation
		if diff > 500 {
			effect += 0.1 // Наветренный склон собирает осадки
		} else if diff < -300 {
			effect -= 0.15 // Дождевая тень
		}
	}

	return math.Max(-0.3, math.Min(0.3, effect))
}

// generateRiverSystems размещает истоки крупных рек
func (g *WorldScaleGenerator) generateRiverSystems(rng *rand.Rand) {
	riverCount := 0

	for y := 0; y < WorldHeight; y++ {
		for x := 0; x < WorldWidth; x++ {
			tile := &g.world.tiles[y*WorldWidth+x]

			if tile.IsLand &&
				tile.FinalElevation > 500 &&
				tile.Precipitation > 0.6 &&
				rng.Float64() < 0.02 &&
				riverCount < numMajorRivers {

				riverCount++
				tile.HasMajorRiver = true
				tile.RiverID = riverCount
			}
		}
	}

	logging.Debug("Размещено %d речных систем", riverCount)
}

// assignBiomes присваивает биомы по климату и высоте.
// Порядок проверок — это приоритет: горы перекрывают реки,
// реки перекрывают температурную матрицу.
func (g *WorldScaleGenerator) assignBiomes() {
	for i := range g.world.tiles {
		tile := &g.world.tiles[i]

		if !tile.IsLand {
			switch {
			case tile.FinalElevation < -2000:
				tile.Biome = BiomeDeepOcean
			case tile.FinalElevation < -200:
				tile.Biome = BiomeShallowSea
			default:
				tile.Biome = BiomeCoastalWaters
			}
			continue
		}

		temp := tile.Temperature
		precip := tile.Precipitation
		elevation := tile.FinalElevation

		switch {
		case elevation > 3000:
			tile.Biome = BiomeHighMountains

		case elevation > 1500:
			if temp < 0.3 {
				tile.Biome = BiomeHighMountains
			} else if precip > 0.6 {
				tile.Biome = BiomeMountainForest
			} else {
				tile.Biome = BiomeMountainDesert
			}

		case tile.HasMajorRiver && precip > 0.5:
			tile.Biome = BiomeWetland

		case temp < 0.2:
			if elevation > 0 {
				tile.Biome = BiomePolarIce
			} else {
				tile.Biome = BiomeTundra
			}

		case temp < 0.4:
			if precip > 0.4 {
				tile.Biome = BiomeTaiga
			} else {
				tile.Biome = BiomeTundra
			}

		case temp < 0.7:
			if precip > 0.6 {
				tile.Biome = BiomeTemperateForest
			} else if precip > 0.3 {
				tile.Biome = BiomeGrassland
			} else {
				tile.Biome = BiomeDesert
			}

		default:
			if precip > 0.7 {
				tile.Biome = BiomeTropicalForest
			} else if precip > 0.4 {
				tile.Biome = BiomeSavanna
			} else {
				tile.Biome = BiomeDesert
			}
		}
	}
}

// generateDisplay присваивает каждому тайлу символ и цвета по биому
func (g *WorldScaleGenerator) generateDisplay() {
	for i := range g.world.tiles {
		tile := &g.world.tiles[i]
		if gl, ok := biomeGlyphs[tile.Biome]; ok {
			tile.Char = gl.Char
			tile.Fg = gl.Fg
			tile.Bg = gl.Bg
		}
	}
}

// clamp01 ограничивает значение диапазоном [0, 1]
func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
