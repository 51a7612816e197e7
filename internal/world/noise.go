package world

import (
	"math"
	"math/rand"
)

// NoiseField — детерминированный генератор value-шума на таблице перестановок.
// Один и тот же сид всегда даёт одну и ту же таблицу, а значит
// и одинаковые значения шума в любой точке.
type NoiseField struct {
	perm [512]int
}

// NewNoiseField создает поле шума из указанного сида
func NewNoiseField(seed int64) *NoiseField {
	f := &NoiseField{}
	rng := rand.New(rand.NewSource(seed))

	base := make([]int, 256)
	for i := range base {
		base[i] = i
	}
	rng.Shuffle(len(base), func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})

	// Дублируем таблицу, чтобы не брать модуль при индексации perm[a+b]
	for i := 0; i < 256; i++ {
		f.perm[i] = base[i]
		f.perm[i+256] = base[i]
	}
	return f
}

// hash возвращает псевдослучайное значение узла решетки в диапазоне [-1, 1]
func (f *NoiseField) hash(x, y int) float64 {
	h := f.perm[f.perm[x&255]+(y&255)]
	return float64(h)/127.5 - 1.0
}

// smoothstep — кубическая интерполяционная кривая 3t^2 - 2t^3
func smoothstep(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// Sample возвращает значение шума в точке (от -1 до 1).
// Билинейная интерполяция углов ячейки решетки со сглаживанием.
func (f *NoiseField) Sample(x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))

	fx := x - float64(x0)
	fy := y - float64(y0)

	sx := smoothstep(fx)
	sy := smoothstep(fy)

	n00 := f.hash(x0, y0)
	n10 := f.hash(x0+1, y0)
	n01 := f.hash(x0, y0+1)
	n11 := f.hash(x0+1, y0+1)

	top := n00 + sx*(n10-n00)
	bottom := n01 + sx*(n11-n01)
	return top + sy*(bottom-top)
}

// OctaveNoise суммирует несколько октав шума с затуханием амплитуды.
// Результат нормализован обратно в диапазон [-1, 1].
func (f *NoiseField) OctaveNoise(x, y float64, octaves int, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxAmplitude := 0.0

	for i := 0; i < octaves; i++ {
		total += f.Sample(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2.0
	}

	return total / maxAmplitude
}

// RidgeNoise возвращает хребтовый шум в диапазоне [0, 1]:
// значения около 1 образуют резкие гребни, пригодные для горных цепей
func (f *NoiseField) RidgeNoise(x, y float64, octaves int) float64 {
	n := f.OctaveNoise(x, y, octaves, 0.5)
	return 1.0 - math.Abs(n)
}
