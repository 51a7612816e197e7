package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Conversions(t *testing.T) {
	v := Vec2{X: 5*1024 + 12*32 + 3, Y: 7*1024 + 31*32 + 17}

	assert.Equal(t, Vec2{X: 5, Y: 7}, v.ToSectorCoords(), "сектор из абсолютных метров")
	assert.Equal(t, Vec2{X: 5*32 + 12, Y: 7*32 + 31}, v.ToBlockCoords(), "блок из абсолютных метров")
	assert.Equal(t, Vec2{X: 3, Y: 17}, v.LocalInBlock(), "метры внутри блока")
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}

	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)
	assert.Equal(t, Vec2{X: 3, Y: 4}, a.Add(b))
}

func TestVec2FloatOps(t *testing.T) {
	a := Vec2Float{X: 1.5, Y: 2.5}
	b := Vec2Float{X: 0.5, Y: 0.5}

	assert.Equal(t, Vec2Float{X: 2.0, Y: 3.0}, a.Add(b))
	assert.Equal(t, Vec2Float{X: 1.0, Y: 2.0}, a.Sub(b))
	assert.Equal(t, Vec2Float{X: 3.0, Y: 5.0}, a.Mul(2))
	assert.InDelta(t, 5.0, Vec2Float{X: 3, Y: 4}.Length(), 1e-9)
	assert.Equal(t, Vec2{X: 1, Y: 2}, a.ToVec2())
	assert.Equal(t, Vec2Float{X: 4.0, Y: 9.0}, FromVec2(Vec2{X: 4, Y: 9}))
}
