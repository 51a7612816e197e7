package util

import (
	"github.com/aquilax/go-perlin"
)

// ClimateNoise — генератор шума Перлина для климатических возмущений.
// Состояние хранится в экземпляре, а не в пакете: несколько миров
// с разными сидами могут генерироваться параллельно без взаимного влияния.
type ClimateNoise struct {
	noise *perlin.Perlin
}

// NewClimateNoise инициализирует генератор шума Перлина с указанным сидом
func NewClimateNoise(seed int64) *ClimateNoise {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &ClimateNoise{noise: perlin.NewPerlin(alpha, beta, n, seed)}
}

// Sample возвращает значение шума Перлина для указанных координат (от -1 до 1)
func (c *ClimateNoise) Sample(x, y float64) float64 {
	return c.noise.Noise2D(x, y)
}

// Sample01 возвращает значение шума в диапазоне от 0 до 1
func (c *ClimateNoise) Sample01(x, y float64) float64 {
	return (c.noise.Noise2D(x, y) + 1.0) / 2.0
}
