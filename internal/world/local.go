package world

import (
	"math"
	"math/rand"
	"time"

	"github.com/russell-pier/covenant-blood-fire-sub000/internal/logging"
)

// Параметры локальной генерации
const (
	maxResourceClusters = 6
	maxAnimalAreas      = 4

	microTerrainScale        = 0.8 // Вариация поверхности, 1 тайл = 1 метр
	preciseElevationScale    = 1.2 // Сантиметровый рельеф
	structuralFeatureDensity = 0.05

	localEdgeDistance = 3 // Глубина смешивания с соседними блоками
)

// LocalScaleGenerator генерирует локальные чанки 32x32 метровых тайлов.
// Как и региональный генератор, не хранит состояние между вызовами.
type LocalScaleGenerator struct {
	seed  int64
	noise *NoiseField
}

// NewLocalScaleGenerator создает локальный генератор для сида
func NewLocalScaleGenerator(seed int64) *LocalScaleGenerator {
	return &LocalScaleGenerator{
		seed:  seed,
		noise: NewNoiseField(seed + 2000),
	}
}

// resourceCluster — скопление ресурсов внутри чанка
type resourceCluster struct {
	resource ResourceType
	centerX  float64
	centerY  float64
	radius   float64
	density  float64 // Вероятность ресурса на тайле внутри скопления
	quality  float64 // Влияет на количество
}

// animalSpawnArea — зона появления животных
type animalSpawnArea struct {
	spawn            AnimalSpawnType
	centerX          float64
	centerY          float64
	radius           float64
	capacity         int
	preferredTerrain []LocalTerrain
}

// localRun — состояние одного запуска локальной генерации
type localRun struct {
	gen       *LocalScaleGenerator
	rng       *rand.Rand
	parent    *RegionalTile
	neighbors map[Direction]*RegionalTile
	chunk     *LocalChunk
	clusters  []resourceCluster
	areas     []animalSpawnArea
}

// GenerateLocalChunk генерирует чанк 32x32 из данных блока и его соседей.
// Соседи нужны только по четырем основным направлениям.
func (g *LocalScaleGenerator) GenerateLocalChunk(parent *RegionalTile,
	neighbors map[Direction]*RegionalTile) *LocalChunk {

	start := time.Now()
	defer observeGeneration("local", start)

	logging.Trace("Локальная генерация: блок (%d,%d), рельеф %s",
		parent.X, parent.Y, parent.Terrain)

	run := &localRun{
		gen:       g,
		rng:       rand.New(rand.NewSource(g.seed + 2000 + int64(parent.X)*31 + int64(parent.Y)*17)),
		parent:    parent,
		neighbors: neighbors,
		chunk: &LocalChunk{
			ID:      mapRunID("local", g.seed, parent.X, parent.Y),
			Seed:    g.seed,
			ParentX: parent.X,
			ParentY: parent.Y,
			tiles:   make([]LocalTile, ChunkSize*ChunkSize),
		},
	}

	run.initialize()
	run.generateSubTerrain()
	run.generatePreciseElevation()
	run.defineZLevelStructure()
	run.placeHarvestableResources()
	run.defineAnimalSpawnAreas()
	run.calculateMovementCosts()
	run.generateDisplay()

	return run.chunk
}

// GetLocalTile возвращает локальный тайл по метровым координатам
func (g *LocalScaleGenerator) GetLocalTile(c *LocalChunk, x, y int) (*LocalTile, bool) {
	if c == nil {
		return nil, false
	}
	return c.Tile(x, y)
}

// defaultSubTerrain возвращает базовую поверхность для подтипа рельефа
func defaultSubTerrain(terrain TerrainSubtype) LocalTerrain {
	switch terrain {
	case TerrainPlains, TerrainForestClearing, TerrainOasis,
		TerrainGentleSlopes, TerrainMountainValley, TerrainFloodplain:
		return LocalGrassPatch
	case TerrainRollingHills, TerrainAlpineMeadow, TerrainTundraHills:
		return LocalShortGrass
	case TerrainMeadows:
		return LocalTallGrass
	case TerrainShrubland:
		return LocalThornyBushes
	case TerrainDenseForest, TerrainOldGrowth:
		return LocalMatureTrees
	case TerrainLightWoodland:
		return LocalYoungTrees
	case TerrainSandDunes:
		return LocalSandySoil
	case TerrainRockyDesert, TerrainSteepSlopes, TerrainCliffs:
		return LocalRockyGround
	case TerrainBadlands, TerrainPermafrost, TerrainIceFields:
		return LocalBareEarth
	case TerrainDeepWater, TerrainCalmPools:
		return LocalDeepWater
	case TerrainShallowWater, TerrainRapids:
		return LocalShallowWater
	case TerrainMarsh, TerrainSwamp:
		return LocalMuddyGround
	case TerrainBog:
		return LocalMossCovered
	default:
		return LocalGrassPatch
	}
}

// terrainSubTerrains — упорядоченные списки поверхностей по подтипам рельефа
var terrainSubTerrains = map[TerrainSubtype][]LocalTerrain{
	TerrainPlains: {
		LocalGrassPatch, LocalShortGrass, LocalBareEarth, LocalDirtPath,
	},
	TerrainRollingHills: {
		LocalShortGrass, LocalGrassPatch, LocalRockyGround, LocalLooseStones,
	},
	TerrainMeadows: {
		LocalTallGrass, LocalWildflowers, LocalGrassPatch, LocalShortGrass,
	},
	TerrainShrubland: {
		LocalThornyBushes, LocalBerryBushes, LocalShortGrass, LocalBareEarth,
	},
	TerrainDenseForest: {
		LocalMatureTrees, LocalFallenLog, LocalLeafLitter, LocalMossCovered,
	},
	TerrainLightWoodland: {
		LocalYoungTrees, LocalGrassPatch, LocalLeafLitter, LocalWildflowers,
	},
	TerrainForestClearing: {
		LocalGrassPatch, LocalTallGrass, LocalWildflowers, LocalYoungTrees,
	},
	TerrainSandDunes: {
		LocalSandySoil, LocalBareEarth, LocalLooseStones, LocalPebbles,
	},
	TerrainRockyDesert: {
		LocalRockyGround, LocalLooseStones, LocalSmallBoulder, LocalBareEarth,
	},
	TerrainSteepSlopes: {
		LocalRockyGround, LocalSmallBoulder, LocalLargeBoulder, LocalLooseStones,
	},
	TerrainCliffs: {
		LocalRockyGround, LocalLargeBoulder, LocalRockOutcrop, LocalLooseStones,
	},
	TerrainMarsh: {
		LocalMuddyGround, LocalReedBeds, LocalShallowWater, LocalMossCovered,
	},
	TerrainSwamp: {
		LocalMuddyGround, LocalShallowWater, LocalMossCovered, LocalFallenLog,
	},
}

// subTerrainsFor возвращает список поверхностей подтипа или дефолтный
func subTerrainsFor(terrain TerrainSubtype) []LocalTerrain {
	if subs, ok := terrainSubTerrains[terrain]; ok {
		return subs
	}
	return []LocalTerrain{defaultSubTerrain(terrain)}
}

func (r *localRun) initialize() {
	base := defaultSubTerrain(r.parent.Terrain)
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile := &r.chunk.tiles[y*ChunkSize+x]
			tile.X = x
			tile.Y = y
			tile.Terrain = base
			tile.ParentTerrain = r.parent.Terrain
			tile.Elevation = r.parent.MicroElevation
			tile.ZLevel = ZSurface
			tile.MovementCost = 1.0
		}
	}
}

func (r *localRun) generateSubTerrain() {
	subs := subTerrainsFor(r.parent.Terrain)

	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile := &r.chunk.tiles[y*ChunkSize+x]

			if len(subs) > 1 {
				n := r.gen.noise.OctaveNoise(
					float64(r.parent.X*ChunkSize+x)*microTerrainScale,
					float64(r.parent.Y*ChunkSize+y)*microTerrainScale,
					3, 0.6,
				)
				idx := int((n + 1) * 0.5 * float64(len(subs)))
				if idx < 0 {
					idx = 0
				}
				if idx > len(subs)-1 {
					idx = len(subs) - 1
				}
				tile.Terrain = subs[idx]
			} else {
				tile.Terrain = subs[0]
			}

			if r.parent.HasMinorRiver {
				r.applyRiverWater(tile, x, y)
			}

			r.applyNeighborInfluence(tile, x, y)
		}
	}
}

// applyRiverWater штампует русло региональной реки поверх поверхности
func (r *localRun) applyRiverWater(tile *LocalTile, x, y int) {
	if r.parent.RiverSize <= 0 || (x+y)%8 != 0 {
		return
	}

	if r.parent.RiverSize >= 3 {
		tile.Terrain = LocalDeepWater
	} else {
		tile.Terrain = LocalShallowWater
	}

	// Часть русла превращается в урез воды
	if r.rng.Float64() < 0.3 {
		tile.Terrain = LocalWaterEdge
	}
}

// applyNeighborInfluence смешивает поверхности у границ чанка.
// Порядок направлений фиксирован, первый успешный бросок побеждает.
func (r *localRun) applyNeighborInfluence(tile *LocalTile, x, y int) {
	for _, dir := range edgeBlendOrder {
		var nearEdge bool
		switch dir {
		case DirNorth:
			nearEdge = y < localEdgeDistance
		case DirSouth:
			nearEdge = y >= ChunkSize-localEdgeDistance
		case DirWest:
			nearEdge = x < localEdgeDistance
		case DirEast:
			nearEdge = x >= ChunkSize-localEdgeDistance
		}
		if !nearEdge {
			continue
		}

		neighbor, ok := r.neighbors[dir]
		if !ok || neighbor.Terrain == r.parent.Terrain {
			continue
		}

		if r.rng.Float64() < 0.15 {
			options := subTerrainsFor(neighbor.Terrain)
			tile.Terrain = options[r.rng.Intn(len(options))]
			return
		}
	}
}

// subTerrainElevationScales — амплитуда рельефа по поверхностям, метры
var subTerrainElevationScales = map[LocalTerrain]float64{
	LocalGrassPatch:   0.1,
	LocalShortGrass:   0.05,
	LocalTallGrass:    0.08,
	LocalBareEarth:    0.15,
	LocalRockyGround:  0.3,
	LocalSandySoil:    0.2,
	LocalMuddyGround:  0.05,
	LocalMossCovered:  0.03,
	LocalLeafLitter:   0.1,
	LocalWildflowers:  0.08,
	LocalThornyBushes: 0.2,
	LocalBerryBushes:  0.15,
	LocalYoungTrees:   0.3,
	LocalMatureTrees:  0.4,
	LocalFallenLog:    0.5,
	LocalSmallBoulder: 0.8,
	LocalLargeBoulder: 1.2,
	LocalRockOutcrop:  1.5,
	LocalLooseStones:  0.4,
	LocalPebbles:      0.1,
	LocalShallowWater: 0.02,
	LocalDeepWater:    0.05,
	LocalWaterEdge:    0.1,
	LocalMuddyBank:    0.08,
	LocalReedBeds:     0.1,
}

func (r *localRun) generatePreciseElevation() {
	base := r.parent.MicroElevation

	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile := &r.chunk.tiles[y*ChunkSize+x]

			n := r.gen.noise.OctaveNoise(
				float64(r.parent.X*ChunkSize+x)*preciseElevationScale,
				float64(r.parent.Y*ChunkSize+y)*preciseElevationScale,
				4, 0.4,
			)

			scale, ok := subTerrainElevationScales[tile.Terrain]
			if !ok {
				scale = 0.1
			}
			elevation := base + n*scale

			// Валуны возвышаются, вода утоплена
			switch tile.Terrain {
			case LocalSmallBoulder:
				elevation += 0.5
			case LocalLargeBoulder:
				elevation += 1.5
			case LocalShallowWater:
				elevation -= 0.2
			case LocalDeepWater:
				elevation -= 0.8
			}

			tile.Elevation = elevation
		}
	}
}

// movementBlockers — поверхности, непроходимые для существ
var movementBlockers = map[LocalTerrain]bool{
	LocalLargeBoulder: true,
	LocalRockOutcrop:  true,
	LocalDeepWater:    true,
	LocalMatureTrees:  true,
}

// sightBlockers — поверхности, закрывающие обзор
var sightBlockers = map[LocalTerrain]bool{
	LocalLargeBoulder: true,
	LocalRockOutcrop:  true,
	LocalMatureTrees:  true,
	LocalYoungTrees:   true,
}

// upperAccessTerrain — поверхности, через которые можно подняться наверх
var upperAccessTerrain = map[LocalTerrain]bool{
	LocalMatureTrees:  true,
	LocalYoungTrees:   true,
	LocalLargeBoulder: true,
	LocalRockOutcrop:  true,
}

func (r *localRun) defineZLevelStructure() {
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile := &r.chunk.tiles[y*ChunkSize+x]

			tile.ZLevel = determineZLevel(tile.Terrain)
			tile.BlocksMovement = movementBlockers[tile.Terrain]
			tile.BlocksLineOfSight = sightBlockers[tile.Terrain]
			tile.CanAccessUpperLevel = upperAccessTerrain[tile.Terrain]
			// Спуск вниз появится вместе с пещерами
			tile.CanAccessLowerLevel = false

			if r.rng.Float64() < structuralFeatureDensity {
				tile.Feature = r.selectStructuralFeature(tile)
			}
		}
	}
}

func determineZLevel(terrain LocalTerrain) ZLevel {
	switch terrain {
	case LocalMatureTrees, LocalYoungTrees, LocalLargeBoulder, LocalRockOutcrop:
		return ZElevated
	default:
		return ZSurface
	}
}

func (r *localRun) selectStructuralFeature(tile *LocalTile) StructuralFeature {
	switch tile.Terrain {
	case LocalFallenLog:
		return FeatureFallenTreeBridge
	case LocalShallowWater, LocalWaterEdge:
		return FeatureWaterFord
	case LocalLargeBoulder, LocalRockOutcrop:
		return FeatureRockPile
	}

	if r.parent.Terrain == TerrainSteepSlopes || r.parent.Terrain == TerrainCliffs {
		return FeatureMountainLedge
	}

	return FeatureNone
}

func (r *localRun) placeHarvestableResources() {
	r.generateResourceClusters()

	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile := &r.chunk.tiles[y*ChunkSize+x]

			// Скопления просматриваются в порядке создания:
			// позднее скопление может перекрыть раннее
			for _, cluster := range r.clusters {
				dx := float64(x) - cluster.centerX
				dy := float64(y) - cluster.centerY
				if math.Sqrt(dx*dx+dy*dy) > cluster.radius {
					continue
				}
				if r.rng.Float64() < cluster.density {
					tile.Resource = cluster.resource
					tile.ResourceQuantity = int(cluster.quality*5) + 1
					tile.ResourceQuality = cluster.quality
					tile.ResourceRespawnTime = resourceRespawnDays(cluster.resource)
				}
			}

			// Одиночные ресурсы по поверхности вне скоплений
			if tile.Resource == ResourceNone && r.rng.Float64() < 0.1 {
				if resource := terrainResource(tile.Terrain); resource != ResourceNone {
					tile.Resource = resource
					tile.ResourceQuantity = 1 + r.rng.Intn(3)
					tile.ResourceRespawnTime = resourceRespawnDays(resource)
				}
			}
		}
	}
}

func (r *localRun) generateResourceClusters() {
	prob := 0.3
	if r.parent.Resource != ConcentrationNone {
		prob += 0.4
	}

	numClusters := 0
	for i := 0; i < maxResourceClusters; i++ {
		if r.rng.Float64() < prob {
			numClusters++
		}
	}

	for i := 0; i < numClusters; i++ {
		for attempt := 0; attempt < 15; attempt++ {
			cx := 2 + r.rng.Float64()*float64(ChunkSize-4)
			cy := 2 + r.rng.Float64()*float64(ChunkSize-4)
			radius := 1.5 + r.rng.Float64()*2.5

			conflict := false
			for _, existing := range r.clusters {
				dx := cx - existing.centerX
				dy := cy - existing.centerY
				if math.Sqrt(dx*dx+dy*dy) < radius+existing.radius+1 {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}

			r.clusters = append(r.clusters, resourceCluster{
				resource: r.selectClusterResource(),
				centerX:  cx,
				centerY:  cy,
				radius:   radius,
				density:  0.3 + r.rng.Float64()*0.5,
				quality:  0.4 + r.rng.Float64()*0.6,
			})
			break
		}
	}
}

// selectClusterResource подбирает тип скопления под рельеф блока
func (r *localRun) selectClusterResource() ResourceType {
	pick := func(options ...ResourceType) ResourceType {
		return options[r.rng.Intn(len(options))]
	}

	switch r.parent.Terrain {
	case TerrainDenseForest, TerrainOldGrowth:
		return pick(ResourceLogs, ResourceBranches, ResourceNuts)
	case TerrainLightWoodland, TerrainForestClearing:
		return pick(ResourceBranches, ResourceBerries, ResourceHerbs)
	case TerrainMeadows, TerrainPlains:
		return pick(ResourceHerbs, ResourceBerries)
	case TerrainRockyDesert, TerrainSteepSlopes:
		return pick(ResourceStones, ResourceFlint, ResourceIronOre)
	case TerrainMarsh, TerrainSwamp:
		return pick(ResourceReeds, ResourceClay, ResourceHerbs)
	case TerrainShallowWater, TerrainDeepWater:
		return ResourceFish
	default:
		return ResourceHerbs
	}
}

// terrainResource — одиночный ресурс по поверхности
func terrainResource(terrain LocalTerrain) ResourceType {
	switch terrain {
	case LocalBerryBushes:
		return ResourceBerries
	case LocalWildflowers:
		return ResourceHerbs
	case LocalFallenLog:
		return ResourceBranches
	case LocalMatureTrees:
		return ResourceLogs
	case LocalYoungTrees:
		return ResourceBranches
	case LocalLooseStones:
		return ResourceStones
	case LocalPebbles:
		return ResourceFlint
	case LocalReedBeds:
		return ResourceReeds
	case LocalMuddyGround:
		return ResourceClay
	case LocalShallowWater, LocalDeepWater:
		return ResourceFish
	default:
		return ResourceNone
	}
}

// resourceRespawnDays возвращает срок восстановления ресурса в днях.
// Минералы и срубленные бревна не восстанавливаются.
func resourceRespawnDays(resource ResourceType) int {
	switch resource {
	case ResourceBerries:
		return 7
	case ResourceHerbs:
		return 14
	case ResourceMushrooms:
		return 3
	case ResourceFish:
		return 1
	case ResourceBranches:
		return 30
	case ResourceReeds:
		return 21
	default:
		return 0
	}
}

func (r *localRun) defineAnimalSpawnAreas() {
	r.generateAnimalAreas()

	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			tile := &r.chunk.tiles[y*ChunkSize+x]

			for _, area := range r.areas {
				dx := float64(x) - area.centerX
				dy := float64(y) - area.centerY
				if math.Sqrt(dx*dx+dy*dy) > area.radius {
					continue
				}

				for _, preferred := range area.preferredTerrain {
					if tile.Terrain == preferred {
						tile.Spawn = area.spawn
						tile.SpawnFrequency = 0.1 + r.rng.Float64()*0.2
						tile.MaxAnimals = 1 + r.rng.Intn(3)
						break
					}
				}
			}
		}
	}
}

func (r *localRun) generateAnimalAreas() {
	prob := 0.4
	switch r.parent.ParentBiome {
	case BiomeTemperateForest, BiomeGrassland, BiomeWetland:
		prob += 0.3
	}

	numAreas := 0
	for i := 0; i < maxAnimalAreas; i++ {
		if r.rng.Float64() < prob {
			numAreas++
		}
	}

	for i := 0; i < numAreas; i++ {
		for attempt := 0; attempt < 10; attempt++ {
			cx := 3 + r.rng.Float64()*float64(ChunkSize-6)
			cy := 3 + r.rng.Float64()*float64(ChunkSize-6)
			radius := 2.0 + r.rng.Float64()*4.0

			conflict := false
			for _, existing := range r.areas {
				dx := cx - existing.centerX
				dy := cy - existing.centerY
				if math.Sqrt(dx*dx+dy*dy) < radius+existing.radius+2 {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}

			spawn, preferred := r.selectAnimalSpawnType()
			r.areas = append(r.areas, animalSpawnArea{
				spawn:            spawn,
				centerX:          cx,
				centerY:          cy,
				radius:           radius,
				capacity:         3 + r.rng.Intn(6),
				preferredTerrain: preferred,
			})
			break
		}
	}
}

// selectAnimalSpawnType подбирает тип животных и их поверхности под рельеф
func (r *localRun) selectAnimalSpawnType() (AnimalSpawnType, []LocalTerrain) {
	switch r.parent.Terrain {
	case TerrainDenseForest, TerrainLightWoodland:
		return SpawnSmallGame, []LocalTerrain{LocalYoungTrees, LocalMatureTrees, LocalLeafLitter}
	case TerrainPlains, TerrainMeadows:
		return SpawnLargeGame, []LocalTerrain{LocalGrassPatch, LocalTallGrass}
	case TerrainShallowWater, TerrainDeepWater:
		return SpawnFish, []LocalTerrain{LocalShallowWater, LocalDeepWater}
	case TerrainMarsh, TerrainSwamp:
		return SpawnSmallGame, []LocalTerrain{LocalReedBeds, LocalMuddyGround}
	case TerrainShrubland:
		return SpawnSmallGame, []LocalTerrain{LocalThornyBushes, LocalBerryBushes}
	default:
		return SpawnSmallGame, []LocalTerrain{LocalGrassPatch}
	}
}

// movementCosts — базовая стоимость передвижения по поверхностям
var movementCosts = map[LocalTerrain]float64{
	LocalGrassPatch:   1.0,
	LocalShortGrass:   1.0,
	LocalTallGrass:    1.2,
	LocalBareEarth:    1.1,
	LocalDirtPath:     0.8,
	LocalRockyGround:  1.5,
	LocalSandySoil:    1.3,
	LocalMuddyGround:  2.0,
	LocalMossCovered:  1.1,
	LocalLeafLitter:   1.2,
	LocalWildflowers:  1.1,
	LocalThornyBushes: 2.5,
	LocalBerryBushes:  1.8,
	LocalYoungTrees:   2.0,
	LocalMatureTrees:  3.0,
	LocalFallenLog:    2.2,
	LocalSmallBoulder: 1.8,
	LocalLargeBoulder: 3.0,
	LocalRockOutcrop:  3.0,
	LocalLooseStones:  1.6,
	LocalPebbles:      1.2,
	LocalShallowWater: 2.5,
	LocalDeepWater:    3.0,
	LocalWaterEdge:    1.4,
	LocalMuddyBank:    1.8,
	LocalReedBeds:     2.0,
}

// concealmentValues — укрытие по поверхностям
var concealmentValues = map[LocalTerrain]float64{
	LocalGrassPatch:   0.1,
	LocalShortGrass:   0.05,
	LocalTallGrass:    0.4,
	LocalRockyGround:  0.2,
	LocalMuddyGround:  0.1,
	LocalMossCovered:  0.3,
	LocalLeafLitter:   0.3,
	LocalWildflowers:  0.2,
	LocalThornyBushes: 0.7,
	LocalBerryBushes:  0.6,
	LocalYoungTrees:   0.8,
	LocalMatureTrees:  0.9,
	LocalFallenLog:    0.5,
	LocalSmallBoulder: 0.4,
	LocalLargeBoulder: 0.6,
	LocalRockOutcrop:  0.7,
	LocalLooseStones:  0.2,
	LocalReedBeds:     0.8,
}

func (r *localRun) calculateMovementCosts() {
	for i := range r.chunk.tiles {
		tile := &r.chunk.tiles[i]

		cost, ok := movementCosts[tile.Terrain]
		if !ok {
			cost = 1.0
		}
		// Перепады высот больше метра замедляют движение
		if math.Abs(tile.Elevation) > 1.0 {
			cost *= 1.2
		}
		tile.MovementCost = math.Min(3.0, cost)

		tile.Concealment = concealmentValues[tile.Terrain]
	}
}

func (r *localRun) generateDisplay() {
	for i := range r.chunk.tiles {
		tile := &r.chunk.tiles[i]

		if gl, ok := localGlyphs[tile.Terrain]; ok {
			tile.Char = gl.Char
			tile.Fg = gl.Fg
			tile.Bg = gl.Bg
		}

		if tile.Resource != ResourceNone {
			if ch, ok := resourceChars[tile.Resource]; ok {
				tile.Char = ch
			}
		}
		if tile.Feature != FeatureNone {
			if ch, ok := featureChars[tile.Feature]; ok {
				tile.Char = ch
			}
		}
	}
}
