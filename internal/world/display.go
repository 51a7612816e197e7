package world

// Таблицы отображения: символ и цвета для каждого типа тайла.
// Это только классификация — рендеринг здесь не живет.

type glyph struct {
	Char   rune
	Fg, Bg RGB
}

var biomeGlyphs = map[BiomeType]glyph{
	BiomeDeepOcean:       {'~', RGB{100, 150, 255}, RGB{0, 50, 150}},
	BiomeShallowSea:      {'~', RGB{130, 180, 255}, RGB{30, 90, 180}},
	BiomeCoastalWaters:   {'≈', RGB{160, 210, 255}, RGB{60, 130, 200}},
	BiomePolarIce:        {'#', RGB{240, 250, 255}, RGB{200, 220, 240}},
	BiomeTundra:          {'.', RGB{180, 190, 170}, RGB{120, 130, 110}},
	BiomeTaiga:           {'T', RGB{60, 120, 80}, RGB{30, 70, 50}},
	BiomeTemperateForest: {'t', RGB{50, 140, 60}, RGB{20, 80, 30}},
	BiomeGrassland:       {'"', RGB{120, 180, 80}, RGB{70, 120, 40}},
	BiomeDesert:          {'·', RGB{230, 210, 150}, RGB{190, 170, 110}},
	BiomeTropicalForest:  {'T', RGB{30, 160, 50}, RGB{10, 90, 20}},
	BiomeSavanna:         {'"', RGB{200, 190, 100}, RGB{150, 140, 60}},
	BiomeWetland:         {'%', RGB{90, 140, 110}, RGB{50, 90, 80}},
	BiomeHighMountains:   {'^', RGB{220, 220, 230}, RGB{130, 130, 140}},
	BiomeMountainForest:  {'^', RGB{90, 130, 90}, RGB{60, 90, 70}},
	BiomeMountainDesert:  {'^', RGB{200, 180, 140}, RGB{140, 120, 90}},
}

var terrainGlyphs = map[TerrainSubtype]glyph{
	TerrainPlains:         {'.', RGB{130, 180, 90}, RGB{80, 120, 50}},
	TerrainRollingHills:   {'n', RGB{140, 170, 90}, RGB{90, 110, 50}},
	TerrainMeadows:        {'"', RGB{150, 200, 100}, RGB{90, 140, 60}},
	TerrainShrubland:      {'+', RGB{120, 150, 80}, RGB{80, 100, 50}},
	TerrainDenseForest:    {'T', RGB{40, 120, 50}, RGB{20, 70, 30}},
	TerrainLightWoodland:  {'t', RGB{70, 140, 70}, RGB{40, 90, 40}},
	TerrainForestClearing: {'"', RGB{130, 190, 90}, RGB{70, 120, 50}},
	TerrainOldGrowth:      {'T', RGB{30, 100, 40}, RGB{10, 60, 20}},
	TerrainSandDunes:      {'~', RGB{240, 220, 160}, RGB{200, 180, 120}},
	TerrainRockyDesert:    {'∷', RGB{210, 190, 150}, RGB{160, 140, 100}},
	TerrainBadlands:       {'≡', RGB{190, 150, 110}, RGB{140, 100, 70}},
	TerrainOasis:          {'o', RGB{80, 200, 120}, RGB{50, 140, 90}},
	TerrainSteepSlopes:    {'/', RGB{180, 180, 190}, RGB{110, 110, 120}},
	TerrainGentleSlopes:   {'\\', RGB{160, 170, 150}, RGB{100, 110, 90}},
	TerrainMountainValley: {'v', RGB{130, 160, 110}, RGB{80, 100, 70}},
	TerrainAlpineMeadow:   {'"', RGB{160, 210, 140}, RGB{100, 150, 90}},
	TerrainCliffs:         {'#', RGB{200, 200, 210}, RGB{90, 90, 100}},
	TerrainDeepWater:      {'~', RGB{80, 130, 230}, RGB{20, 60, 150}},
	TerrainShallowWater:   {'~', RGB{120, 170, 240}, RGB{50, 100, 180}},
	TerrainRapids:         {'≈', RGB{180, 210, 250}, RGB{80, 130, 200}},
	TerrainCalmPools:      {'o', RGB{100, 160, 230}, RGB{40, 90, 170}},
	TerrainMarsh:          {'%', RGB{100, 150, 110}, RGB{60, 100, 80}},
	TerrainSwamp:          {'&', RGB{80, 120, 90}, RGB{40, 80, 60}},
	TerrainBog:            {'%', RGB{110, 120, 90}, RGB{70, 80, 60}},
	TerrainFloodplain:     {'=', RGB{140, 180, 120}, RGB{90, 130, 80}},
	TerrainPermafrost:     {'.', RGB{200, 210, 220}, RGB{150, 160, 180}},
	TerrainTundraHills:    {'n', RGB{170, 180, 170}, RGB{110, 120, 110}},
	TerrainIceFields:      {'#', RGB{230, 240, 255}, RGB{190, 210, 235}},
}

var localGlyphs = map[LocalTerrain]glyph{
	LocalDirtPath:     {'·', RGB{170, 140, 100}, RGB{120, 95, 65}},
	LocalGrassPatch:   {'.', RGB{120, 180, 90}, RGB{70, 120, 50}},
	LocalBareEarth:    {'·', RGB{150, 120, 90}, RGB{110, 85, 60}},
	LocalRockyGround:  {'∴', RGB{160, 160, 160}, RGB{100, 100, 100}},
	LocalSandySoil:    {'·', RGB{220, 200, 150}, RGB{180, 160, 110}},
	LocalMuddyGround:  {'~', RGB{130, 110, 80}, RGB{90, 75, 50}},
	LocalMossCovered:  {'.', RGB{90, 150, 90}, RGB{50, 100, 60}},
	LocalLeafLitter:   {',', RGB{150, 120, 70}, RGB{100, 80, 40}},
	LocalTallGrass:    {'|', RGB{110, 170, 80}, RGB{60, 110, 40}},
	LocalShortGrass:   {'"', RGB{130, 190, 100}, RGB{80, 130, 60}},
	LocalWildflowers:  {'*', RGB{220, 160, 200}, RGB{90, 140, 60}},
	LocalThornyBushes: {'+', RGB{100, 130, 70}, RGB{60, 90, 40}},
	LocalBerryBushes:  {'%', RGB{140, 80, 120}, RGB{60, 100, 50}},
	LocalYoungTrees:   {'t', RGB{80, 150, 80}, RGB{40, 100, 50}},
	LocalMatureTrees:  {'T', RGB{50, 120, 60}, RGB{20, 80, 30}},
	LocalFallenLog:    {'=', RGB{140, 100, 60}, RGB{90, 65, 40}},
	LocalSmallBoulder: {'o', RGB{170, 170, 170}, RGB{110, 110, 110}},
	LocalLargeBoulder: {'O', RGB{190, 190, 190}, RGB{120, 120, 120}},
	LocalRockOutcrop:  {'#', RGB{180, 180, 190}, RGB{100, 100, 110}},
	LocalLooseStones:  {'∴', RGB{160, 155, 150}, RGB{105, 100, 95}},
	LocalPebbles:      {':', RGB{170, 165, 155}, RGB{115, 110, 100}},
	LocalShallowWater: {'~', RGB{120, 170, 240}, RGB{50, 100, 180}},
	LocalDeepWater:    {'~', RGB{80, 130, 230}, RGB{20, 60, 150}},
	LocalWaterEdge:    {'≈', RGB{150, 190, 245}, RGB{70, 120, 190}},
	LocalMuddyBank:    {'~', RGB{140, 120, 90}, RGB{95, 80, 55}},
	LocalReedBeds:     {'|', RGB{120, 160, 110}, RGB{60, 110, 90}},
}

// Переопределения символа для тайлов с особенностями.
// Цвета при этом сохраняются от базовой поверхности.
var landmarkChars = map[LandmarkType]rune{
	LandmarkCaveEntrance:         'C',
	LandmarkCavernComplex:        'C',
	LandmarkDeepCave:             'C',
	LandmarkUndergroundLake:      'U',
	LandmarkMountainPass:         'P',
	LandmarkScenicOverlook:       '!',
	LandmarkNaturalBridge:        'B',
	LandmarkHiddenValley:         'H',
	LandmarkWaterfall:            'W',
	LandmarkNaturalSpring:        'S',
	LandmarkDeepPool:             'O',
	LandmarkRiverCrossing:        'X',
	LandmarkStandingStones:       'I',
	LandmarkCrater:               'Q',
	LandmarkNaturalArch:          'A',
	LandmarkUnusualRockFormation: 'R',
	LandmarkVisibleOreOutcrop:    'M',
	LandmarkAncientGrove:         'G',
	LandmarkMineralSpring:        'S',
	LandmarkSaltFlat:             '_',
}

var concentrationChars = map[ResourceConcentration]rune{
	ConcentrationWoodGrove:      'w',
	ConcentrationStoneQuarry:    'q',
	ConcentrationMetalDeposit:   'm',
	ConcentrationFertileSoil:    'f',
	ConcentrationHuntingGrounds: 'h',
	ConcentrationFishingSpot:    'f',
	ConcentrationHerbPatch:      'h',
	ConcentrationClayDeposits:   'c',
}

var resourceChars = map[ResourceType]rune{
	ResourceBerries:      'b',
	ResourceNuts:         'n',
	ResourceHerbs:        'h',
	ResourceMushrooms:    'm',
	ResourceHoney:        'y',
	ResourceGameTrail:    'g',
	ResourceFish:         'f',
	ResourceBranches:     '/',
	ResourceLogs:         '=',
	ResourceBark:         'k',
	ResourceReeds:        '|',
	ResourceClay:         'c',
	ResourceFlint:        'F',
	ResourceStones:       's',
	ResourceIronOre:      'I',
	ResourceCopperOre:    'C',
	ResourceSalt:         'S',
	ResourceGems:         '*',
	ResourceCoal:         'K',
	ResourceFreshWater:   'w',
	ResourceMineralWater: 'W',
}

var featureChars = map[StructuralFeature]rune{
	FeatureCaveMouth:        'Ω',
	FeatureMountainLedge:    '>',
	FeatureCliffFace:        '#',
	FeatureNaturalRamp:      '/',
	FeatureTreeTrunk:        '|',
	FeatureRockPile:         '∩',
	FeatureWaterFord:        '≠',
	FeatureFallenTreeBridge: '=',
}
