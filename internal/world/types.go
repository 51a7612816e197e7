package world

// Общий модуль перечислений для всех трёх генераторов.
// Все типы определены ровно один раз; генераторы не дублируют
// и не переопределяют их между собой.

// PlateType представляет тип тектонической плиты
type PlateType int

const (
	PlateOceanic PlateType = iota
	PlateContinental
)

// ClimateZone представляет климатическую зону по широте
type ClimateZone int

const (
	ClimatePolar ClimateZone = iota
	ClimateSubpolar
	ClimateTemperate
	ClimateSubtropical
	ClimateTropical
)

// String возвращает строковое представление климатической зоны
func (c ClimateZone) String() string {
	switch c {
	case ClimatePolar:
		return "polar"
	case ClimateSubpolar:
		return "subpolar"
	case ClimateTemperate:
		return "temperate"
	case ClimateSubtropical:
		return "subtropical"
	case ClimateTropical:
		return "tropical"
	default:
		return "unknown"
	}
}

// BiomeType представляет биом мирового масштаба
type BiomeType int

const (
	// Океанические биомы
	BiomeDeepOcean BiomeType = iota
	BiomeShallowSea
	BiomeCoastalWaters

	// Сухопутные биомы
	BiomePolarIce
	BiomeTundra
	BiomeTaiga
	BiomeTemperateForest
	BiomeGrassland
	BiomeDesert
	BiomeTropicalForest
	BiomeSavanna
	BiomeWetland

	// Горные биомы
	BiomeHighMountains
	BiomeMountainForest
	BiomeMountainDesert
)

// String возвращает строковое представление биома
func (b BiomeType) String() string {
	switch b {
	case BiomeDeepOcean:
		return "deep_ocean"
	case BiomeShallowSea:
		return "shallow_sea"
	case BiomeCoastalWaters:
		return "coastal_waters"
	case BiomePolarIce:
		return "polar_ice"
	case BiomeTundra:
		return "tundra"
	case BiomeTaiga:
		return "taiga"
	case BiomeTemperateForest:
		return "temperate_forest"
	case BiomeGrassland:
		return "grassland"
	case BiomeDesert:
		return "desert"
	case BiomeTropicalForest:
		return "tropical_forest"
	case BiomeSavanna:
		return "savanna"
	case BiomeWetland:
		return "wetland"
	case BiomeHighMountains:
		return "high_mountains"
	case BiomeMountainForest:
		return "mountain_forest"
	case BiomeMountainDesert:
		return "mountain_desert"
	default:
		return "unknown"
	}
}

// IsWater сообщает, является ли биом водным
func (b BiomeType) IsWater() bool {
	return b == BiomeDeepOcean || b == BiomeShallowSea || b == BiomeCoastalWaters
}

// TerrainSubtype представляет подтип рельефа регионального масштаба
type TerrainSubtype int

const (
	// Подтипы GRASSLAND
	TerrainPlains TerrainSubtype = iota
	TerrainRollingHills
	TerrainMeadows
	TerrainShrubland

	// Подтипы лесов
	TerrainDenseForest
	TerrainLightWoodland
	TerrainForestClearing
	TerrainOldGrowth

	// Подтипы пустынь
	TerrainSandDunes
	TerrainRockyDesert
	TerrainBadlands
	TerrainOasis

	// Подтипы гор
	TerrainSteepSlopes
	TerrainGentleSlopes
	TerrainMountainValley
	TerrainAlpineMeadow
	TerrainCliffs

	// Водные подтипы
	TerrainDeepWater
	TerrainShallowWater
	TerrainRapids
	TerrainCalmPools

	// Подтипы болот
	TerrainMarsh
	TerrainSwamp
	TerrainBog
	TerrainFloodplain

	// Подтипы тундры
	TerrainPermafrost
	TerrainTundraHills
	TerrainIceFields
)

// String возвращает строковое представление подтипа рельефа
func (t TerrainSubtype) String() string {
	names := map[TerrainSubtype]string{
		TerrainPlains:         "plains",
		TerrainRollingHills:   "rolling_hills",
		TerrainMeadows:        "meadows",
		TerrainShrubland:      "shrubland",
		TerrainDenseForest:    "dense_forest",
		TerrainLightWoodland:  "light_woodland",
		TerrainForestClearing: "forest_clearing",
		TerrainOldGrowth:      "old_growth",
		TerrainSandDunes:      "sand_dunes",
		TerrainRockyDesert:    "rocky_desert",
		TerrainBadlands:       "badlands",
		TerrainOasis:          "oasis",
		TerrainSteepSlopes:    "steep_slopes",
		TerrainGentleSlopes:   "gentle_slopes",
		TerrainMountainValley: "mountain_valley",
		TerrainAlpineMeadow:   "alpine_meadow",
		TerrainCliffs:         "cliffs",
		TerrainDeepWater:      "deep_water",
		TerrainShallowWater:   "shallow_water",
		TerrainRapids:         "rapids",
		TerrainCalmPools:      "calm_pools",
		TerrainMarsh:          "marsh",
		TerrainSwamp:          "swamp",
		TerrainBog:            "bog",
		TerrainFloodplain:     "floodplain",
		TerrainPermafrost:     "permafrost",
		TerrainTundraHills:    "tundra_hills",
		TerrainIceFields:      "ice_fields",
	}
	if name, ok := names[t]; ok {
		return name
	}
	return "unknown"
}

// IsWater сообщает, является ли подтип рельефа водным
func (t TerrainSubtype) IsWater() bool {
	return t == TerrainDeepWater || t == TerrainShallowWater ||
		t == TerrainRapids || t == TerrainCalmPools
}

// IsSteep сообщает, является ли подтип рельефа крутым (непригодным для озёр)
func (t TerrainSubtype) IsSteep() bool {
	return t == TerrainSteepSlopes || t == TerrainCliffs
}

// LocalTerrain представляет тип поверхности локального масштаба (1 тайл = 1 метр)
type LocalTerrain int

const (
	// Грунтовые поверхности
	LocalDirtPath LocalTerrain = iota
	LocalGrassPatch
	LocalBareEarth
	LocalRockyGround
	LocalSandySoil
	LocalMuddyGround
	LocalMossCovered
	LocalLeafLitter

	// Растительность
	LocalTallGrass
	LocalShortGrass
	LocalWildflowers
	LocalThornyBushes
	LocalBerryBushes
	LocalYoungTrees
	LocalMatureTrees
	LocalFallenLog

	// Скальные образования
	LocalSmallBoulder
	LocalLargeBoulder
	LocalRockOutcrop
	LocalLooseStones
	LocalPebbles

	// Водные поверхности
	LocalShallowWater
	LocalDeepWater
	LocalWaterEdge
	LocalMuddyBank
	LocalReedBeds
)

// String возвращает строковое представление локальной поверхности
func (l LocalTerrain) String() string {
	names := map[LocalTerrain]string{
		LocalDirtPath:     "dirt_path",
		LocalGrassPatch:   "grass_patch",
		LocalBareEarth:    "bare_earth",
		LocalRockyGround:  "rocky_ground",
		LocalSandySoil:    "sandy_soil",
		LocalMuddyGround:  "muddy_ground",
		LocalMossCovered:  "moss_covered",
		LocalLeafLitter:   "leaf_litter",
		LocalTallGrass:    "tall_grass",
		LocalShortGrass:   "short_grass",
		LocalWildflowers:  "wildflowers",
		LocalThornyBushes: "thorny_bushes",
		LocalBerryBushes:  "berry_bushes",
		LocalYoungTrees:   "young_trees",
		LocalMatureTrees:  "mature_trees",
		LocalFallenLog:    "fallen_log",
		LocalSmallBoulder: "small_boulder",
		LocalLargeBoulder: "large_boulder",
		LocalRockOutcrop:  "rock_outcrop",
		LocalLooseStones:  "loose_stones",
		LocalPebbles:      "pebbles",
		LocalShallowWater: "shallow_water",
		LocalDeepWater:    "deep_water",
		LocalWaterEdge:    "water_edge",
		LocalMuddyBank:    "muddy_bank",
		LocalReedBeds:     "reed_beds",
	}
	if name, ok := names[l]; ok {
		return name
	}
	return "unknown"
}

// LandmarkType представляет особые достопримечательности региона
type LandmarkType int

const (
	LandmarkNone LandmarkType = iota

	// Пещерные системы
	LandmarkCaveEntrance
	LandmarkCavernComplex
	LandmarkDeepCave
	LandmarkUndergroundLake

	// Горные объекты
	LandmarkMountainPass
	LandmarkScenicOverlook
	LandmarkNaturalBridge
	LandmarkHiddenValley

	// Водные объекты
	LandmarkWaterfall
	LandmarkNaturalSpring
	LandmarkDeepPool
	LandmarkRiverCrossing

	// Уникальный рельеф
	LandmarkStandingStones
	LandmarkCrater
	LandmarkNaturalArch
	LandmarkUnusualRockFormation

	// Ресурсные объекты
	LandmarkVisibleOreOutcrop
	LandmarkAncientGrove
	LandmarkMineralSpring
	LandmarkSaltFlat
)

// ResourceConcentration представляет зону концентрации ресурсов в регионе
type ResourceConcentration int

const (
	ConcentrationNone ResourceConcentration = iota
	ConcentrationWoodGrove
	ConcentrationStoneQuarry
	ConcentrationMetalDeposit
	ConcentrationFertileSoil
	ConcentrationHuntingGrounds
	ConcentrationFishingSpot
	ConcentrationHerbPatch
	ConcentrationClayDeposits
)

// ZLevel представляет вертикальный слой локального тайла.
// Не зависит от точной высоты: это тег слоя, а не координата.
type ZLevel int

const (
	ZDeepUnderground ZLevel = -2 // Глубокие пещерные системы
	ZUnderground     ZLevel = -1 // Неглубокие пещеры, погреба
	ZSurface         ZLevel = 0  // Уровень земли
	ZElevated        ZLevel = 1  // Платформы, холмы, деревья
	ZHigh            ZLevel = 2  // Высокие деревья, скалы
)

// ResourceType представляет добываемый ресурс
type ResourceType int

const (
	ResourceNone ResourceType = iota

	// Возобновляемые биологические ресурсы
	ResourceBerries
	ResourceNuts
	ResourceHerbs
	ResourceMushrooms
	ResourceHoney
	ResourceGameTrail
	ResourceFish

	// Добываемые материалы
	ResourceBranches
	ResourceLogs
	ResourceBark
	ResourceReeds
	ResourceClay
	ResourceFlint
	ResourceStones

	// Минеральные ресурсы
	ResourceIronOre
	ResourceCopperOre
	ResourceSalt
	ResourceGems
	ResourceCoal

	// Водные ресурсы
	ResourceFreshWater
	ResourceMineralWater
)

// AnimalSpawnType представляет тип зоны появления животных
type AnimalSpawnType int

const (
	SpawnNone AnimalSpawnType = iota
	SpawnSmallGame              // Кролики, птицы
	SpawnLargeGame              // Олени, лоси
	SpawnPredators              // Волки, медведи
	SpawnLivestock              // Овцы, скот
	SpawnFish                   // Рыба в воде
	SpawnInsects                // Пчёлы и прочие
)

// StructuralFeature представляет 3D-структурный элемент локального тайла
type StructuralFeature int

const (
	FeatureNone StructuralFeature = iota
	FeatureCaveMouth              // Вход на подземные уровни
	FeatureMountainLedge          // Доступ на возвышенные уровни
	FeatureCliffFace              // Вертикальный барьер
	FeatureNaturalRamp            // Плавный переход высоты
	FeatureTreeTrunk              // Подъём на уровень крон
	FeatureRockPile               // Преодолимое препятствие
	FeatureWaterFord              // Брод через реку
	FeatureFallenTreeBridge       // Естественный мост
)

// Direction представляет направление к соседнему тайлу
type Direction int

const (
	DirNorth Direction = iota
	DirSouth
	DirEast
	DirWest
	DirNortheast
	DirNorthwest
	DirSoutheast
	DirSouthwest
)

// String возвращает строковое представление направления
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	case DirNortheast:
		return "northeast"
	case DirNorthwest:
		return "northwest"
	case DirSoutheast:
		return "southeast"
	case DirSouthwest:
		return "southwest"
	default:
		return "unknown"
	}
}

// Offset возвращает смещение (dx, dy) для направления
func (d Direction) Offset() (int, int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	case DirNortheast:
		return 1, -1
	case DirNorthwest:
		return -1, -1
	case DirSoutheast:
		return 1, 1
	case DirSouthwest:
		return -1, 1
	default:
		return 0, 0
	}
}

// allDirections — фиксированный порядок обхода всех восьми направлений.
// Карты соседей никогда не обходятся напрямую: порядок итерации map
// недетерминирован и сломал бы контракт воспроизводимости.
var allDirections = []Direction{
	DirNorth, DirSouth, DirEast, DirWest,
	DirNortheast, DirNorthwest, DirSoutheast, DirSouthwest,
}

// edgeBlendOrder — фиксированный порядок проверки соседей при смешивании
// на границах: первый сосед с отличающимся типом и удачным броском побеждает.
var edgeBlendOrder = []Direction{DirNorth, DirSouth, DirWest, DirEast}
