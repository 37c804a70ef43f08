package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearMetrics(t *testing.T) {
	a := NewLinear(make([]byte, 1024))

	m := a.Metrics()
	assert.Zero(t, m.SizeInUse)
	assert.Equal(t, 1024, m.Capacity)
	assert.Zero(t, m.Utilization)

	_, err := a.Alloc(100)
	require.NoError(t, err)

	m = a.Metrics()
	assert.GreaterOrEqual(t, m.SizeInUse, 100, "padding counts toward SizeInUse")
	assert.InDelta(t, float64(m.SizeInUse)/1024, m.Utilization, 1e-9)

	a.Reset()
	assert.Zero(t, a.Metrics().SizeInUse)
}

func TestStackMetrics(t *testing.T) {
	s := NewStack(make([]byte, 1024))

	p, err := s.Alloc(100)
	require.NoError(t, err)

	m := s.Metrics()
	assert.GreaterOrEqual(t, m.SizeInUse, 100+stackHeaderSize, "header and padding count toward SizeInUse")
	assert.Equal(t, 1024, m.Capacity)

	s.Free(p)
	assert.Zero(t, s.Metrics().SizeInUse)
}

func TestPoolMetrics(t *testing.T) {
	p := NewPool(make([]byte, 512), 64, 8)

	m := p.Metrics()
	assert.Equal(t, 64, m.ChunkSize)
	assert.Equal(t, m.TotalChunks, m.FreeChunks)

	c, err := p.Alloc()
	require.NoError(t, err)
	assert.Equal(t, m.TotalChunks-1, p.FreeChunks())

	p.Free(c)
	assert.Equal(t, m.TotalChunks, p.FreeChunks())
}

func TestEmptyBufferUtilization(t *testing.T) {
	assert.Zero(t, NewLinear(nil).Utilization())
	assert.Zero(t, NewStack(nil).Utilization())
}
