package world

import (
	"github.com/russell-pier/covenant-blood-fire-sub000/internal/vec"
)

// Размеры мира и коэффициенты преобразования между масштабами.
// Один сектор мира = 32x32 блоков, один блок = 32x32 метров.
const (
	WorldWidth  = 128 // Ширина мира в секторах
	WorldHeight = 96  // Высота мира в секторах

	RegionSize = 32 // Размер региональной карты в блоках
	ChunkSize  = 32 // Размер локального чанка в метрах

	MetersPerBlock  = 32   // Метров в одном блоке
	MetersPerSector = 1024 // Метров в одном секторе (32*32)
)

// AbsoluteCoordinate представляет позицию в абсолютных метрах мира
type AbsoluteCoordinate struct {
	Pos vec.Vec2
}

// WorldCoordinate представляет сектор мирового масштаба
type WorldCoordinate struct {
	SectorX, SectorY int
}

// RegionalCoordinate представляет блок внутри сектора
type RegionalCoordinate struct {
	SectorX, SectorY int
	BlockX, BlockY   int
}

// LocalCoordinate представляет метровый тайл внутри блока
type LocalCoordinate struct {
	SectorX, SectorY int
	BlockX, BlockY   int
	MeterX, MeterY   int
}

// ToAbsolute возвращает абсолютные метры северо-западного угла сектора
func (w WorldCoordinate) ToAbsolute() AbsoluteCoordinate {
	return AbsoluteCoordinate{Pos: vec.Vec2{
		X: w.SectorX * MetersPerSector,
		Y: w.SectorY * MetersPerSector,
	}}
}

// ToAbsolute возвращает абсолютные метры северо-западного угла блока
func (r RegionalCoordinate) ToAbsolute() AbsoluteCoordinate {
	return AbsoluteCoordinate{Pos: vec.Vec2{
		X: r.SectorX*MetersPerSector + r.BlockX*MetersPerBlock,
		Y: r.SectorY*MetersPerSector + r.BlockY*MetersPerBlock,
	}}
}

// ToAbsolute возвращает абсолютные метры тайла
func (l LocalCoordinate) ToAbsolute() AbsoluteCoordinate {
	return AbsoluteCoordinate{Pos: vec.Vec2{
		X: l.SectorX*MetersPerSector + l.BlockX*MetersPerBlock + l.MeterX,
		Y: l.SectorY*MetersPerSector + l.BlockY*MetersPerBlock + l.MeterY,
	}}
}

// ToWorld возвращает сектор, содержащий абсолютную позицию
func (a AbsoluteCoordinate) ToWorld() WorldCoordinate {
	sector := a.Pos.ToSectorCoords()
	return WorldCoordinate{SectorX: sector.X, SectorY: sector.Y}
}

// ToRegional возвращает блок, содержащий абсолютную позицию
func (a AbsoluteCoordinate) ToRegional() RegionalCoordinate {
	sector := a.Pos.ToSectorCoords()
	block := a.Pos.ToBlockCoords()
	return RegionalCoordinate{
		SectorX: sector.X,
		SectorY: sector.Y,
		BlockX:  block.X & (RegionSize - 1),
		BlockY:  block.Y & (RegionSize - 1),
	}
}

// ToLocal возвращает полный трёхуровневый адрес абсолютной позиции
func (a AbsoluteCoordinate) ToLocal() LocalCoordinate {
	regional := a.ToRegional()
	meter := a.Pos.LocalInBlock()
	return LocalCoordinate{
		SectorX: regional.SectorX,
		SectorY: regional.SectorY,
		BlockX:  regional.BlockX,
		BlockY:  regional.BlockY,
		MeterX:  meter.X,
		MeterY:  meter.Y,
	}
}

// IsValidWorldCoord проверяет, лежит ли сектор в границах мира
func IsValidWorldCoord(c WorldCoordinate) bool {
	return c.SectorX >= 0 && c.SectorX < WorldWidth &&
		c.SectorY >= 0 && c.SectorY < WorldHeight
}

// IsValidRegionalCoord проверяет границы сектора и блока
func IsValidRegionalCoord(c RegionalCoordinate) bool {
	return IsValidWorldCoord(WorldCoordinate{SectorX: c.SectorX, SectorY: c.SectorY}) &&
		c.BlockX >= 0 && c.BlockX < RegionSize &&
		c.BlockY >= 0 && c.BlockY < RegionSize
}

// IsValidLocalCoord проверяет границы на всех трёх уровнях
func IsValidLocalCoord(c LocalCoordinate) bool {
	return IsValidRegionalCoord(RegionalCoordinate{
		SectorX: c.SectorX, SectorY: c.SectorY,
		BlockX: c.BlockX, BlockY: c.BlockY,
	}) && c.MeterX >= 0 && c.MeterX < ChunkSize &&
		c.MeterY >= 0 && c.MeterY < ChunkSize
}
