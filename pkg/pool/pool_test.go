package pool_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhal-go/fakevhal/pkg/pool"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

func fanValue(speed int32) *vehicle.PropertyValue {
	return &vehicle.PropertyValue{
		Timestamp: 100,
		Prop:      vehicle.HvacFanSpeed,
		AreaID:    vehicle.AreaHvacLeft,
		Status:    vehicle.StatusAvailable,
		Value:     vehicle.Int32Value(speed),
	}
}

func TestObtainCopiesTemplate(t *testing.T) {
	p := pool.New()
	tmpl := fanValue(3)

	v := p.Obtain(tmpl)
	require.NotNil(t, v)
	assert.NotSame(t, tmpl, v)
	assert.Equal(t, tmpl.Prop, v.Prop)
	assert.Equal(t, tmpl.AreaID, v.AreaID)
	assert.Equal(t, tmpl.Timestamp, v.Timestamp)
	assert.True(t, tmpl.Value.Equal(v.Value))

	// Mutating the template must not affect the obtained value.
	tmpl.Value.Int32Values[0] = 7
	assert.Equal(t, int32(3), v.Value.Int32Values[0])
}

func TestObtainReusesRecycled(t *testing.T) {
	p := pool.New()

	first := p.Obtain(fanValue(3))
	p.Recycle(first)

	second := p.Obtain(fanValue(5))
	assert.Same(t, first, second, "recycled instance should be reused")
	assert.Equal(t, []int32{5}, second.Value.Int32Values)

	stats := p.Stats()
	assert.Equal(t, uint64(2), stats.Obtained)
	assert.Equal(t, uint64(1), stats.Reused)
	assert.Equal(t, uint64(1), stats.Recycled)
	assert.Equal(t, 0, stats.Free)
}

func TestObtainedValuesIndependent(t *testing.T) {
	p := pool.New()
	tmpl := fanValue(3)

	a := p.Obtain(tmpl)
	b := p.Obtain(tmpl)
	a.Value.Int32Values[0] = 1

	assert.Equal(t, int32(3), b.Value.Int32Values[0])
}

func TestReusedValueClearsOldPayload(t *testing.T) {
	p := pool.New()

	v := p.Obtain(&vehicle.PropertyValue{
		Prop:  vehicle.InfoMake,
		Value: vehicle.RawValues{StringValue: "Toy", ByteValues: []byte{1, 2}},
	})
	p.Recycle(v)

	got := p.Obtain(fanValue(2))
	assert.Empty(t, got.Value.ByteValues)
	assert.Empty(t, got.Value.StringValue)
}

func TestRecycleBounded(t *testing.T) {
	p := pool.NewWithCapacity(1)

	p.Recycle(fanValue(1))
	p.Recycle(fanValue(2))

	assert.Equal(t, 1, p.Stats().Free)
}

func TestReferenceCounting(t *testing.T) {
	p := pool.New()
	assert.Equal(t, int32(1), p.Stats().Refs)

	shared := p.Retain()
	assert.Same(t, p, shared)
	assert.Equal(t, int32(2), p.Stats().Refs)

	p.Recycle(fanValue(1))
	p.Release()
	assert.False(t, p.Closed())
	assert.Equal(t, 1, p.Stats().Free)

	shared.Release()
	assert.True(t, p.Closed())
	assert.Equal(t, 0, p.Stats().Free)

	// Still usable after close, without reuse.
	v := p.Obtain(fanValue(4))
	require.NotNil(t, v)
	p.Recycle(v)
	assert.Equal(t, 0, p.Stats().Free)
}

func TestConcurrentObtainRecycle(t *testing.T) {
	p := pool.New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(speed int32) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				v := p.Obtain(fanValue(speed))
				if v.Value.Int32Values[0] != speed {
					t.Errorf("got %d, want %d", v.Value.Int32Values[0], speed)
				}
				p.Recycle(v)
			}
		}(int32(i))
	}
	wg.Wait()

	assert.Equal(t, uint64(1600), p.Stats().Obtained)
}
