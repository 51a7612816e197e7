package world

import (
	"math"
	"math/rand"
	"time"

	"github.com/russell-pier/covenant-blood-fire-sub000/internal/logging"
)

// Параметры региональной генерации
const (
	maxLakes       = 6
	maxMinorRivers = 8

	landmarkDensity        = 0.03 // Шанс достопримечательности на тайл
	resourceClusterDensity = 0.05 // Шанс зоны концентрации на тайл

	terrainDetailScale   = 0.15 // Вариация рельефа внутри биома
	elevationDetailScale = 0.2  // Микрорельеф

	edgeInfluenceDistance = 4 // Глубина проникновения соседнего биома
)

// RegionalScaleGenerator генерирует региональные карты 32x32 блоков.
// Генератор не хранит состояние между вызовами: одна и та же пара
// (сектор, соседи) всегда даёт одну и ту же карту.
type RegionalScaleGenerator struct {
	seed  int64
	noise *NoiseField
}

// NewRegionalScaleGenerator создает региональный генератор для сида
func NewRegionalScaleGenerator(seed int64) *RegionalScaleGenerator {
	// Смещение сида отделяет поток шума от мирового генератора
	return &RegionalScaleGenerator{
		seed:  seed,
		noise: NewNoiseField(seed + 1000),
	}
}

// lakeSystem — озеро внутри региона, промежуточные данные генерации
type lakeSystem struct {
	id              int
	centerX         float64
	centerY         float64
	size            float64 // Радиус в блоках
	depth           float64
	isSeasonal      bool
	connectsToRiver bool
}

// riverSegment — малая река внутри региона
type riverSegment struct {
	id                   int
	path                 [][2]int
	size                 int // 1 — ручей, 2 — поток
	connectsToWorldRiver bool
}

// regionalRun — состояние одного запуска генерации.
// Живет только внутри GenerateRegionalMap, генератор остается чистым.
type regionalRun struct {
	gen       *RegionalScaleGenerator
	rng       *rand.Rand
	parent    *WorldTile
	neighbors map[Direction]*WorldTile
	m         *RegionalMap
	lakes     []lakeSystem
	rivers    []riverSegment
}

// GenerateRegionalMap генерирует карту 32x32 из данных сектора и его соседей.
// Отсутствующие соседи (край мира) просто не влияют на границы.
func (g *RegionalScaleGenerator) GenerateRegionalMap(parent *WorldTile,
	neighbors map[Direction]*WorldTile) *RegionalMap {

	start := time.Now()
	defer observeGeneration("regional", start)

	logging.Debug("Региональная генерация: сектор (%d,%d), биом %s",
		parent.X, parent.Y, parent.Biome)

	run := &regionalRun{
		gen: g,
		// Поток случайности выводится из координат сектора: карта
		// воспроизводима независимо от порядка запросов
		rng:       rand.New(rand.NewSource(g.seed + 1000 + int64(parent.X)*31 + int64(parent.Y)*17)),
		parent:    parent,
		neighbors: neighbors,
		m: &RegionalMap{
			ID:      mapRunID("regional", g.seed, parent.X, parent.Y),
			Seed:    g.seed,
			ParentX: parent.X,
			ParentY: parent.Y,
			tiles:   make([]RegionalTile, RegionSize*RegionSize),
		},
	}

	run.initialize()
	run.generateTerrainSubtypes()
	run.generateMicroElevation()
	run.generateWaterSystems()
	run.placeLandmarks()
	run.assignResourceConcentrations()
	run.markTerrainBoundaries()
	run.calculateTileProperties()
	run.generateDisplay()

	return run.m
}

// GetRegionalTile возвращает региональный тайл по координатам блока
func (g *RegionalScaleGenerator) GetRegionalTile(m *RegionalMap, x, y int) (*RegionalTile, bool) {
	if m == nil {
		return nil, false
	}
	return m.Tile(x, y)
}

// defaultTerrainSubtype возвращает базовый подтип рельефа для биома
func defaultTerrainSubtype(biome BiomeType) TerrainSubtype {
	switch biome {
	case BiomeGrassland:
		return TerrainPlains
	case BiomeTemperateForest:
		return TerrainLightWoodland
	case BiomeTropicalForest, BiomeTaiga:
		return TerrainDenseForest
	case BiomeDesert:
		return TerrainSandDunes
	case BiomeTundra:
		return TerrainPermafrost
	case BiomeHighMountains:
		return TerrainSteepSlopes
	case BiomeMountainForest:
		return TerrainGentleSlopes
	case BiomeSavanna:
		return TerrainShrubland
	case BiomeWetland:
		return TerrainMarsh
	case BiomeDeepOcean:
		return TerrainDeepWater
	case BiomeShallowSea, BiomeCoastalWaters:
		return TerrainShallowWater
	default:
		return TerrainPlains
	}
}

// biomeTerrainSubtypes — упорядоченные списки подтипов рельефа по биомам.
// Порядок важен: индекс выбирается из значения шума.
var biomeTerrainSubtypes = map[BiomeType][]TerrainSubtype{
	BiomeGrassland: {
		TerrainPlains, TerrainRollingHills, TerrainMeadows, TerrainShrubland,
	},
	BiomeTemperateForest: {
		TerrainDenseForest, TerrainLightWoodland, TerrainForestClearing, TerrainOldGrowth,
	},
	BiomeTropicalForest: {
		TerrainDenseForest, TerrainOldGrowth, TerrainForestClearing,
	},
	BiomeDesert: {
		TerrainSandDunes, TerrainRockyDesert, TerrainBadlands, TerrainOasis,
	},
	BiomeHighMountains: {
		TerrainSteepSlopes, TerrainCliffs, TerrainAlpineMeadow, TerrainMountainValley,
	},
	BiomeMountainForest: {
		TerrainGentleSlopes, TerrainMountainValley, TerrainDenseForest, TerrainAlpineMeadow,
	},
	BiomeWetland: {
		TerrainMarsh, TerrainSwamp, TerrainBog, TerrainFloodplain,
	},
	BiomeTundra: {
		TerrainPermafrost, TerrainTundraHills, TerrainIceFields,
	},
}

// terrainSubtypesFor возвращает список подтипов биома или дефолтный
func terrainSubtypesFor(biome BiomeType) []TerrainSubtype {
	if subtypes, ok := biomeTerrainSubtypes[biome]; ok {
		return subtypes
	}
	return []TerrainSubtype{defaultTerrainSubtype(biome)}
}

// biomeTransitionKey — пара биомов для таблицы переходных зон
type biomeTransitionKey struct {
	from, to BiomeType
}

var biomeTransitions = map[biomeTransitionKey][]TerrainSubtype{
	{BiomeGrassland, BiomeTemperateForest}:     {TerrainLightWoodland, TerrainShrubland},
	{BiomeTemperateForest, BiomeGrassland}:     {TerrainForestClearing, TerrainMeadows},
	{BiomeDesert, BiomeGrassland}:              {TerrainShrubland},
	{BiomeGrassland, BiomeDesert}:              {TerrainShrubland},
	{BiomeMountainForest, BiomeHighMountains}:  {TerrainAlpineMeadow},
	{BiomeHighMountains, BiomeMountainForest}:  {TerrainGentleSlopes},
}

func (r *regionalRun) initialize() {
	base := defaultTerrainSubtype(r.parent.Biome)
	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile := &r.m.tiles[y*RegionSize+x]
			tile.X = x
			tile.Y = y
			tile.ParentBiome = r.parent.Biome
			tile.Terrain = base
			tile.Fertility = 0.5
			tile.Accessibility = 0.5
		}
	}
}

// generateTerrainSubtypes раздает подтипы рельефа по шуму внутри биома
func (r *regionalRun) generateTerrainSubtypes() {
	subtypes := terrainSubtypesFor(r.parent.Biome)

	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile := &r.m.tiles[y*RegionSize+x]

			if len(subtypes) > 1 {
				// Шум привязан к мировым координатам блока: соседние
				// сектора не повторяют один и тот же узор
				n := r.gen.noise.OctaveNoise(
					float64(r.parent.X*RegionSize+x)*terrainDetailScale,
					float64(r.parent.Y*RegionSize+y)*terrainDetailScale,
					3, 0.6,
				)
				idx := int((n + 1) * 0.5 * float64(len(subtypes)))
				if idx < 0 {
					idx = 0
				}
				if idx > len(subtypes)-1 {
					idx = len(subtypes) - 1
				}
				tile.Terrain = subtypes[idx]
			} else {
				tile.Terrain = subtypes[0]
			}

			// У крупных рек равнины и леса превращаются в пойму
			if r.parent.HasMajorRiver && r.rng.Float64() < 0.3 {
				if r.parent.Biome == BiomeGrassland || r.parent.Biome == BiomeTemperateForest {
					tile.Terrain = TerrainFloodplain
				}
			}

			r.applyNeighborInfluence(tile, x, y)
		}
	}
}

// applyNeighborInfluence смешивает подтипы у границ с соседними биомами.
// Порядок проверки направлений фиксирован, побеждает первое совпадение.
func (r *regionalRun) applyNeighborInfluence(tile *RegionalTile, x, y int) {
	for _, dir := range edgeBlendOrder {
		var nearEdge bool
		switch dir {
		case DirNorth:
			nearEdge = y < edgeInfluenceDistance
		case DirSouth:
			nearEdge = y >= RegionSize-edgeInfluenceDistance
		case DirWest:
			nearEdge = x < edgeInfluenceDistance
		case DirEast:
			nearEdge = x >= RegionSize-edgeInfluenceDistance
		}
		if !nearEdge {
			continue
		}

		neighbor, ok := r.neighbors[dir]
		if !ok || neighbor.Biome == tile.ParentBiome {
			continue
		}

		if r.rng.Float64() < 0.2 {
			key := biomeTransitionKey{from: tile.ParentBiome, to: neighbor.Biome}
			if transitions, ok := biomeTransitions[key]; ok && len(transitions) > 0 {
				tile.Terrain = transitions[r.rng.Intn(len(transitions))]
				tile.BiomeEdge = true
				return
			}
		}
	}
}

// elevationScales — амплитуда микрорельефа по подтипам, метры
var elevationScales = map[TerrainSubtype]float64{
	TerrainPlains:         10.0,
	TerrainRollingHills:   30.0,
	TerrainSteepSlopes:    80.0,
	TerrainCliffs:         150.0,
	TerrainMountainValley: 20.0,
	TerrainAlpineMeadow:   25.0,
	TerrainSandDunes:      15.0,
	TerrainRockyDesert:    40.0,
	TerrainBadlands:       60.0,
	TerrainDenseForest:    20.0,
	TerrainLightWoodland:  15.0,
	TerrainMarsh:          5.0,
	TerrainSwamp:          8.0,
	TerrainDeepWater:      2.0,
	TerrainShallowWater:   3.0,
}

func (r *regionalRun) generateMicroElevation() {
	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile := &r.m.tiles[y*RegionSize+x]

			nx := float64(r.parent.X*RegionSize + x)
			ny := float64(r.parent.Y*RegionSize + y)

			n := r.gen.noise.OctaveNoise(
				nx*elevationDetailScale, ny*elevationDetailScale, 4, 0.5,
			)

			scale, ok := elevationScales[tile.Terrain]
			if !ok {
				scale = 15.0
			}
			elevation := n * scale

			switch tile.Terrain {
			case TerrainRollingHills, TerrainTundraHills:
				hillNoise := r.gen.noise.OctaveNoise(nx*0.3, ny*0.3, 2, 0.5)
				if hillNoise > 0.3 {
					elevation += hillNoise * 50
				}
			case TerrainCliffs:
				elevation += r.gen.noise.RidgeNoise(nx*0.4, ny*0.4, 4) * 100
			}

			tile.MicroElevation = elevation
		}
	}
}

func (r *regionalRun) generateWaterSystems() {
	r.generateLakes()
	r.generateMinorRivers()
	r.applyWaterFeatures()
}

// lakeBiomeModifiers — бонус вероятности озер по биомам
var lakeBiomeModifiers = map[BiomeType]float64{
	BiomeWetland:         0.5,
	BiomeTemperateForest: 0.2,
	BiomeTaiga:           0.3,
	BiomeTundra:          0.4,
	BiomeHighMountains:   0.3,
	BiomeDesert:          0.02,
	BiomeGrassland:       0.1,
}

func (r *regionalRun) lakeProbability() float64 {
	modifier, ok := lakeBiomeModifiers[r.parent.Biome]
	if !ok {
		modifier = 0.1
	}
	return math.Min(0.8, 0.1+r.parent.Precipitation*0.3+modifier)
}

func (r *regionalRun) generateLakes() {
	prob := r.lakeProbability()

	numLakes := 0
	for i := 0; i < maxLakes; i++ {
		if r.rng.Float64() < prob {
			numLakes++
		}
	}

	for lakeID := 0; lakeID < numLakes; lakeID++ {
		for attempt := 0; attempt < 20; attempt++ {
			cx := 4 + r.rng.Float64()*float64(RegionSize-8)
			cy := 4 + r.rng.Float64()*float64(RegionSize-8)
			size := 1.5 + r.rng.Float64()*2.5

			if !r.isSuitableLakeLocation(cx, cy, size) {
				continue
			}

			r.lakes = append(r.lakes, lakeSystem{
				id:              lakeID + 1,
				centerX:         cx,
				centerY:         cy,
				size:            size,
				depth:           2.0 + r.rng.Float64()*6.0,
				isSeasonal:      r.rng.Float64() < 0.2,
				connectsToRiver: r.rng.Float64() < 0.4,
			})
			break
		}
	}
}

func (r *regionalRun) isSuitableLakeLocation(cx, cy, size float64) bool {
	// Озера не пересекаются: между берегами минимум 2 блока
	for _, existing := range r.lakes {
		dx := cx - existing.centerX
		dy := cy - existing.centerY
		if math.Sqrt(dx*dx+dy*dy) < size+existing.size+2 {
			return false
		}
	}

	// Крутой рельеф воду не держит
	for dy := -int(size); dy <= int(size); dy++ {
		for dx := -int(size); dx <= int(size); dx++ {
			x, y := int(cx)+dx, int(cy)+dy
			if x < 0 || x >= RegionSize || y < 0 || y >= RegionSize {
				continue
			}
			if r.m.tiles[y*RegionSize+x].Terrain.IsSteep() {
				return false
			}
		}
	}

	return true
}

func (r *regionalRun) generateMinorRivers() {
	prob := r.parent.Precipitation * 0.4
	if r.parent.HasMajorRiver {
		prob += 0.3
	}

	numRivers := 0
	for i := 0; i < maxMinorRivers; i++ {
		if r.rng.Float64() < prob {
			numRivers++
		}
	}

	for riverID := 0; riverID < numRivers; riverID++ {
		r.generateRiverPath(riverID + 1)
	}
}

func (r *regionalRun) generateRiverPath(riverID int) {
	sx, sy, ok := r.findRiverSource()
	if !ok {
		return
	}

	path := [][2]int{{sx, sy}}
	visited := map[[2]int]bool{{sx, sy}: true}
	cx, cy := sx, sy

	// Спуск по градиенту высоты, максимум 20 шагов
	for step := 0; step < 20; step++ {
		nx, ny, ok := r.findNextRiverTile(cx, cy)
		if !ok || visited[[2]int{nx, ny}] {
			break
		}

		path = append(path, [2]int{nx, ny})
		visited[[2]int{nx, ny}] = true
		cx, cy = nx, ny

		if cx <= 0 || cx >= RegionSize-1 || cy <= 0 || cy >= RegionSize-1 {
			break
		}
	}

	// Короткие обрывки рек отбрасываем
	if len(path) <= 3 {
		return
	}

	connects := false
	if r.parent.HasMajorRiver {
		connects = r.rng.Float64() < 0.3
	}

	r.rivers = append(r.rivers, riverSegment{
		id:                   riverID,
		path:                 path,
		size:                 1 + r.rng.Intn(2),
		connectsToWorldRiver: connects,
	})
}

// findRiverSource ищет самый высокий сухой тайл с отступом 2 от краев
func (r *regionalRun) findRiverSource() (int, int, bool) {
	bestElevation := math.Inf(-1)
	bx, by := -1, -1

	for y := 2; y < RegionSize-2; y++ {
		for x := 2; x < RegionSize-2; x++ {
			tile := &r.m.tiles[y*RegionSize+x]
			if tile.LakeID != 0 || tile.Terrain.IsWater() {
				continue
			}
			if tile.MicroElevation > bestElevation {
				bestElevation = tile.MicroElevation
				bx, by = x, y
			}
		}
	}

	return bx, by, bx >= 0
}

// findNextRiverTile выбирает строго более низкого соседа
func (r *regionalRun) findNextRiverTile(cx, cy int) (int, int, bool) {
	bestElevation := r.m.tiles[cy*RegionSize+cx].MicroElevation
	bx, by := -1, -1

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := cx+dx, cy+dy
			if nx < 0 || nx >= RegionSize || ny < 0 || ny >= RegionSize {
				continue
			}
			if e := r.m.tiles[ny*RegionSize+nx].MicroElevation; e < bestElevation {
				bestElevation = e
				bx, by = nx, ny
			}
		}
	}

	return bx, by, bx >= 0
}

func (r *regionalRun) applyWaterFeatures() {
	// Озера: глубокая вода в центре, мелкая у берега
	for _, lake := range r.lakes {
		for y := 0; y < RegionSize; y++ {
			for x := 0; x < RegionSize; x++ {
				dx := float64(x) - lake.centerX
				dy := float64(y) - lake.centerY
				dist := math.Sqrt(dx*dx + dy*dy)
				if dist > lake.size {
					continue
				}

				tile := &r.m.tiles[y*RegionSize+x]
				tile.LakeID = lake.id
				if dist < lake.size*0.6 {
					tile.Terrain = TerrainDeepWater
				} else {
					tile.Terrain = TerrainShallowWater
				}
			}
		}
	}

	// Реки: ручьи текут поверх рельефа, потоки становятся мелководьем
	for _, river := range r.rivers {
		for _, p := range river.path {
			tile := &r.m.tiles[p[1]*RegionSize+p[0]]
			tile.HasMinorRiver = true
			tile.RiverSize = river.size

			switch river.size {
			case 2:
				tile.Terrain = TerrainShallowWater
			case 3:
				// Размер 3 зарезервирован под полноводные реки;
				// сейчас генератор выдает только размеры 1-2
				tile.Terrain = TerrainDeepWater
			}
		}
	}
}

func (r *regionalRun) placeLandmarks() {
	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile := &r.m.tiles[y*RegionSize+x]
			if r.rng.Float64() < landmarkDensity {
				tile.Landmark = r.selectLandmark(tile)
			}
		}
	}
}

// selectLandmark подбирает достопримечательность под рельеф и биом
func (r *regionalRun) selectLandmark(tile *RegionalTile) LandmarkType {
	pick := func(options ...LandmarkType) LandmarkType {
		return options[r.rng.Intn(len(options))]
	}

	switch tile.Terrain {
	case TerrainSteepSlopes, TerrainCliffs:
		return pick(LandmarkCaveEntrance, LandmarkScenicOverlook, LandmarkNaturalBridge)
	case TerrainMountainValley, TerrainAlpineMeadow:
		return pick(LandmarkHiddenValley, LandmarkNaturalSpring)
	case TerrainDeepWater, TerrainShallowWater:
		return pick(LandmarkDeepPool, LandmarkWaterfall)
	case TerrainDenseForest, TerrainOldGrowth:
		return pick(LandmarkAncientGrove, LandmarkStandingStones)
	case TerrainRockyDesert, TerrainBadlands:
		return pick(LandmarkNaturalArch, LandmarkUnusualRockFormation)
	}

	switch {
	case tile.ParentBiome == BiomeDesert && r.rng.Float64() < 0.1:
		return LandmarkSaltFlat
	case (tile.ParentBiome == BiomeHighMountains || tile.ParentBiome == BiomeMountainForest) &&
		r.rng.Float64() < 0.15:
		return LandmarkMineralSpring
	}

	return LandmarkNone
}

func (r *regionalRun) assignResourceConcentrations() {
	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile := &r.m.tiles[y*RegionSize+x]
			if r.rng.Float64() < resourceClusterDensity {
				tile.Resource = r.selectResourceConcentration(tile)
			}
		}
	}
}

func (r *regionalRun) selectResourceConcentration(tile *RegionalTile) ResourceConcentration {
	switch tile.Terrain {
	case TerrainDenseForest, TerrainOldGrowth:
		return ConcentrationWoodGrove
	case TerrainSteepSlopes, TerrainCliffs, TerrainRockyDesert:
		if r.rng.Float64() < 0.5 {
			return ConcentrationStoneQuarry
		}
		return ConcentrationMetalDeposit
	case TerrainPlains, TerrainMeadows, TerrainFloodplain:
		return ConcentrationFertileSoil
	case TerrainDeepWater, TerrainShallowWater:
		if tile.LakeID != 0 {
			return ConcentrationFishingSpot
		}
	case TerrainMarsh, TerrainSwamp:
		if r.rng.Float64() < 0.5 {
			return ConcentrationHerbPatch
		}
		return ConcentrationClayDeposits
	}

	if tile.ParentBiome == BiomeGrassland || tile.ParentBiome == BiomeSavanna {
		return ConcentrationHuntingGrounds
	}

	return ConcentrationNone
}

func (r *regionalRun) markTerrainBoundaries() {
	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			tile := &r.m.tiles[y*RegionSize+x]

			for dy := -1; dy <= 1 && !tile.TerrainBoundary; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= RegionSize || ny < 0 || ny >= RegionSize {
						continue
					}
					if r.m.tiles[ny*RegionSize+nx].Terrain != tile.Terrain {
						tile.TerrainBoundary = true
						break
					}
				}
			}
		}
	}
}

// terrainFertility — базовое плодородие по подтипам рельефа
var terrainFertility = map[TerrainSubtype]float64{
	TerrainPlains:         0.8,
	TerrainMeadows:        0.9,
	TerrainFloodplain:     1.0,
	TerrainRollingHills:   0.6,
	TerrainForestClearing: 0.7,
	TerrainMarsh:          0.4,
	TerrainSwamp:          0.2,
	TerrainSandDunes:      0.1,
	TerrainRockyDesert:    0.05,
	TerrainSteepSlopes:    0.1,
	TerrainCliffs:         0.0,
}

// terrainAccessibility — базовая проходимость по подтипам рельефа
var terrainAccessibility = map[TerrainSubtype]float64{
	TerrainPlains:        1.0,
	TerrainRollingHills:  0.8,
	TerrainMeadows:       0.9,
	TerrainLightWoodland: 0.7,
	TerrainDenseForest:   0.4,
	TerrainSteepSlopes:   0.3,
	TerrainCliffs:        0.1,
	TerrainMarsh:         0.3,
	TerrainSwamp:         0.2,
	TerrainDeepWater:     0.0,
	TerrainShallowWater:  0.1,
	TerrainSandDunes:     0.6,
	TerrainRockyDesert:   0.5,
}

func (r *regionalRun) calculateTileProperties() {
	for i := range r.m.tiles {
		tile := &r.m.tiles[i]
		tile.Fertility = r.calculateFertility(tile)
		tile.Accessibility = r.calculateAccessibility(tile)
	}
}

func (r *regionalRun) calculateFertility(tile *RegionalTile) float64 {
	fertility, ok := terrainFertility[tile.Terrain]
	if !ok {
		fertility = 0.3
	}

	// Умеренный климат и осадки дают лучшие урожаи
	fertility *= r.parent.Precipitation
	fertility *= 1.0 - math.Abs(r.parent.Temperature-0.6)

	if tile.Resource == ConcentrationFertileSoil {
		fertility += 0.3
	}
	if tile.HasMinorRiver || tile.LakeID != 0 {
		fertility += 0.2
	}

	return clamp01(fertility)
}

func (r *regionalRun) calculateAccessibility(tile *RegionalTile) float64 {
	accessibility, ok := terrainAccessibility[tile.Terrain]
	if !ok {
		accessibility = 0.5
	}

	if math.Abs(tile.MicroElevation) > 50 {
		accessibility *= 0.8
	}
	if tile.HasMinorRiver && tile.RiverSize > 1 {
		accessibility *= 0.7
	}

	return clamp01(accessibility)
}

func (r *regionalRun) generateDisplay() {
	for i := range r.m.tiles {
		tile := &r.m.tiles[i]

		if gl, ok := terrainGlyphs[tile.Terrain]; ok {
			tile.Char = gl.Char
			tile.Fg = gl.Fg
			tile.Bg = gl.Bg
		}

		// Особенности перекрывают символ, цвета остаются от рельефа
		if tile.Landmark != LandmarkNone {
			if ch, ok := landmarkChars[tile.Landmark]; ok {
				tile.Char = ch
			}
		} else if tile.Resource != ConcentrationNone {
			if ch, ok := concentrationChars[tile.Resource]; ok {
				tile.Char = ch
			}
		}
	}
}
