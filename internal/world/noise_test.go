package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoiseDeterminism(t *testing.T) {
	a := NewNoiseField(42)
	b := NewNoiseField(42)

	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.73
		assert.Equal(t, a.Sample(x, y), b.Sample(x, y),
			"одинаковый сид должен давать одинаковый шум в точке (%f, %f)", x, y)
	}
}

func TestNoiseSeedVariation(t *testing.T) {
	a := NewNoiseField(1)
	b := NewNoiseField(2)

	// Разные сиды должны давать разные поля хотя бы в одной из точек
	different := false
	for i := 0; i < 20; i++ {
		x := float64(i) * 0.51
		if a.Sample(x, x) != b.Sample(x, x) {
			different = true
			break
		}
	}
	assert.True(t, different, "разные сиды не должны давать идентичный шум")
}

func TestNoiseRange(t *testing.T) {
	f := NewNoiseField(123)

	for i := 0; i < 200; i++ {
		x := float64(i) * 0.19
		y := float64(i) * 0.41

		v := f.Sample(x, y)
		assert.GreaterOrEqual(t, v, -1.0, "шум не должен выходить за нижнюю границу")
		assert.LessOrEqual(t, v, 1.0, "шум не должен выходить за верхнюю границу")

		o := f.OctaveNoise(x, y, 4, 0.5)
		assert.GreaterOrEqual(t, o, -1.0)
		assert.LessOrEqual(t, o, 1.0)
	}
}

func TestRidgeNoiseRange(t *testing.T) {
	f := NewNoiseField(777)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.23
		r := f.RidgeNoise(x, x*0.6, 3)
		assert.GreaterOrEqual(t, r, 0.0, "хребтовый шум неотрицателен")
		assert.LessOrEqual(t, r, 1.0, "хребтовый шум не превышает единицу")
	}
}

func TestNoiseContinuity(t *testing.T) {
	f := NewNoiseField(9)

	// Соседние точки не должны прыгать на всю амплитуду
	prev := f.Sample(0, 0)
	for i := 1; i < 100; i++ {
		v := f.Sample(float64(i)*0.01, 0)
		assert.Less(t, v-prev, 0.5, "шум должен быть гладким на мелком шаге")
		assert.Greater(t, v-prev, -0.5)
		prev = v
	}
}
