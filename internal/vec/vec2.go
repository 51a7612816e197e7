package vec

import "math"

// Vec2 представляет 2D координаты
type Vec2 struct {
	X, Y int
}

// ToBlockCoords преобразует абсолютные метры в координаты блока
func (v Vec2) ToBlockCoords() Vec2 {
	return Vec2{X: v.X >> 5, Y: v.Y >> 5} // Деление на 32
}

// ToSectorCoords преобразует абсолютные метры в координаты сектора
func (v Vec2) ToSectorCoords() Vec2 {
	return Vec2{X: v.X >> 10, Y: v.Y >> 10} // Деление на 1024 (32*32)
}

// LocalInBlock возвращает локальные координаты внутри блока
func (v Vec2) LocalInBlock() Vec2 {
	return Vec2{X: v.X & 0x1F, Y: v.Y & 0x1F} // Модуль 32
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
