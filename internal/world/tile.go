package world

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/russell-pier/covenant-blood-fire-sub000/internal/vec"
)

// RGB цвет для отображения тайла
type RGB struct {
	R, G, B uint8
}

// TectonicPlate представляет тектоническую плиту мирового масштаба.
// После создания плита не изменяется.
type TectonicPlate struct {
	ID       int
	Type     PlateType
	Center   vec.Vec2Float
	Velocity vec.Vec2Float // Направление и скорость дрейфа
	Size     float64       // Относительный размер [0.8, 1.5]
	Age      float64       // Возраст плиты [0, 1]
}

// WorldTile представляет один сектор мирового масштаба (1024x1024 метров)
type WorldTile struct {
	X, Y int

	// Тектоника и рельеф
	PlateID        int
	BaseElevation  float64 // Высота до горообразования, метры
	FinalElevation float64 // Итоговая высота, метры
	IsLand         bool

	// Гидрология
	HasMajorRiver bool
	RiverID       int // 0 — реки нет

	// Климат
	Zone              ClimateZone
	Temperature       float64 // [0, 1]
	Precipitation     float64 // [0, 1]
	SeasonalVariation float64 // [0, 1], сила сезонных колебаний

	// Классификация
	Biome BiomeType

	// Отображение
	Char   rune
	Fg, Bg RGB
}

// RegionalTile представляет один блок регионального масштаба (32x32 метров)
type RegionalTile struct {
	X, Y int

	Terrain        TerrainSubtype
	ParentBiome    BiomeType // Биом родительского сектора
	MicroElevation float64   // Отклонение от базовой высоты сектора, метры

	// Гидрология
	LakeID        int // 0 — тайл не принадлежит озеру
	HasMinorRiver bool
	RiverSize     int // 0 — нет, 1 — ручей, 2 — поток, 3 — река

	// Особенности
	Landmark LandmarkType
	Resource ResourceConcentration

	// Границы
	BiomeEdge       bool // Тайл затронут смешиванием с соседним биомом
	TerrainBoundary bool // Хотя бы один сосед имеет другой подтип рельефа

	// Пригодность
	Fertility     float64 // [0, 1]
	Accessibility float64 // [0, 1]

	Char   rune
	Fg, Bg RGB
}

// HasLandmark сообщает, есть ли на тайле достопримечательность
func (t *RegionalTile) HasLandmark() bool {
	return t.Landmark != LandmarkNone
}

// HasResource сообщает, есть ли на тайле зона концентрации ресурсов
func (t *RegionalTile) HasResource() bool {
	return t.Resource != ConcentrationNone
}

// IsWater сообщает, является ли тайл водным (озеро или русло ручья)
func (t *RegionalTile) IsWater() bool {
	return t.Terrain.IsWater()
}

// LocalTile представляет один метровый тайл локального масштаба
type LocalTile struct {
	X, Y int

	Terrain       LocalTerrain
	ParentTerrain TerrainSubtype // Подтип рельефа родительского блока
	Elevation     float64        // Метры относительно уровня блока

	// 3D структура
	ZLevel              ZLevel
	BlocksMovement      bool
	BlocksLineOfSight   bool
	CanAccessUpperLevel bool
	CanAccessLowerLevel bool
	Feature             StructuralFeature

	// Ресурсы
	Resource            ResourceType
	ResourceQuantity    int
	ResourceQuality     float64 // [0, 1]
	ResourceRespawnTime int     // Дней до восстановления, 0 — не восстанавливается

	// Животные
	Spawn          AnimalSpawnType
	SpawnFrequency float64 // [0, 1], вероятность появления за тик
	MaxAnimals     int

	// Игровая механика
	MovementCost float64 // [1.0, 3.0]
	Concealment  float64 // [0, 1]

	Char   rune
	Fg, Bg RGB
}

// HasResource сообщает, есть ли на тайле добываемый ресурс
func (t *LocalTile) HasResource() bool {
	return t.Resource != ResourceNone
}

// HasSpawn сообщает, является ли тайл точкой появления животных
func (t *LocalTile) HasSpawn() bool {
	return t.Spawn != SpawnNone
}

// HasFeature сообщает, есть ли на тайле структурный элемент
func (t *LocalTile) HasFeature() bool {
	return t.Feature != FeatureNone
}

// IsWater сообщает, является ли тайл водным
func (t *LocalTile) IsWater() bool {
	return t.Terrain == LocalShallowWater || t.Terrain == LocalDeepWater ||
		t.Terrain == LocalWaterEdge
}

// WorldMap — полная карта мирового масштаба 128x96 секторов
type WorldMap struct {
	ID     string // Детерминированный идентификатор запуска генерации
	Seed   int64
	Width  int
	Height int

	Plates []TectonicPlate
	tiles  []WorldTile // Плоский массив, индекс y*Width+x
}

// mapRunID строит детерминированный UUID v5 для карты из сида и масштаба.
// Один и тот же сид всегда даёт один и тот же идентификатор.
func mapRunID(scale string, seed int64, x, y int) string {
	name := fmt.Sprintf("%s:%d:%d:%d", scale, seed, x, y)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// Tile возвращает тайл мира по координатам сектора
func (m *WorldMap) Tile(x, y int) (*WorldTile, bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return nil, false
	}
	return &m.tiles[y*m.Width+x], true
}

// RegionalMap — региональная карта 32x32 блоков одного сектора
type RegionalMap struct {
	ID               string
	Seed             int64
	ParentX, ParentY int // Координаты родительского сектора

	tiles []RegionalTile
}

// Tile возвращает региональный тайл по координатам блока
func (m *RegionalMap) Tile(x, y int) (*RegionalTile, bool) {
	if x < 0 || x >= RegionSize || y < 0 || y >= RegionSize {
		return nil, false
	}
	return &m.tiles[y*RegionSize+x], true
}

// LocalChunk — локальный чанк 32x32 метровых тайлов одного блока
type LocalChunk struct {
	ID               string
	Seed             int64
	ParentX, ParentY int // Координаты родительского блока

	tiles []LocalTile
}

// Tile возвращает локальный тайл по метровым координатам
func (c *LocalChunk) Tile(x, y int) (*LocalTile, bool) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize {
		return nil, false
	}
	return &c.tiles[y*ChunkSize+x], true
}
