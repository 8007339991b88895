package dynarray

import (
	"reflect"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
	Tag  [4]byte
}

type named struct {
	ID   int
	Name string
}

func TestHasPointers(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeFor[int](), false},
		{"float array", reflect.TypeFor[[8]float64](), false},
		{"flat struct", reflect.TypeFor[point](), false},
		{"empty struct", reflect.TypeFor[struct{}](), false},
		{"string", reflect.TypeFor[string](), true},
		{"pointer", reflect.TypeFor[*int](), true},
		{"slice", reflect.TypeFor[[]byte](), true},
		{"map", reflect.TypeFor[map[int]int](), true},
		{"interface", reflect.TypeFor[any](), true},
		{"func", reflect.TypeFor[func()](), true},
		{"struct with string", reflect.TypeFor[named](), true},
		{"array of pointers", reflect.TypeFor[[2]*int](), true},
		{"empty array of pointers", reflect.TypeFor[[0]*int](), false},
		{"unsafe pointer", reflect.TypeFor[unsafe.Pointer](), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasPointers(tt.typ))
		})
	}
}

func TestNewArenaAllocatorRejectsPointers(t *testing.T) {
	a, err := NewArenaAllocator[named](NewArena(0))
	require.ErrorIs(t, err, ErrPointerElem)
	assert.Nil(t, a)
	assert.Contains(t, err.Error(), "named")
}

func TestArenaAllocatorVector(t *testing.T) {
	arena := NewArena(4096)
	alloc, err := NewArenaAllocator[point](arena)
	require.NoError(t, err)

	vec := New(WithAllocator[point](alloc))
	for i := 0; i < 1000; i++ {
		require.NoError(t, vec.PushBack(point{X: int32(i), Y: int32(-i)}))
	}
	assert.Equal(t, 1000, vec.Len())
	assert.Equal(t, 1024, vec.Cap())
	for i := 0; i < 1000; i++ {
		p := vec.Get(i)
		require.Equal(t, int32(i), p.X)
		require.Equal(t, int32(-i), p.Y)
	}

	// Every abandoned buffer stays in the arena until Reset.
	used := arena.SizeInUse()
	assert.GreaterOrEqual(t, used, (16+32+64+128+256+512+1024)*int(unsafe.Sizeof(point{})))

	vec.Release()
	arena.Reset()
	assert.Zero(t, arena.SizeInUse())
}

func TestArenaAllocatorOutOfMemory(t *testing.T) {
	arena := NewArena(1024)
	arena.SetLimit(1024)
	alloc, err := NewArenaAllocator[int64](arena)
	require.NoError(t, err)

	vec := New(WithAllocator[int64](alloc))
	for i := 0; i < 16; i++ {
		require.NoError(t, vec.PushBack(int64(i)))
	}

	// Buffers of 16, 32 and 64 eight-byte slots share the 1 KiB chunk;
	// the 128-slot one would need a second chunk.
	for i := 16; i < 64; i++ {
		require.NoError(t, vec.PushBack(int64(i)))
	}
	assert.Equal(t, 1, arena.NumChunks())

	err = vec.PushBack(64)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 64, vec.Len())
	assert.Equal(t, 64, vec.Cap())
	assert.Equal(t, int64(63), vec.Get(63))
}

func TestArenaAllocatorZeroSizedElements(t *testing.T) {
	arena := NewArena(1024)
	alloc, err := NewArenaAllocator[struct{}](arena)
	require.NoError(t, err)

	buf, err := alloc.Allocate(100)
	require.NoError(t, err)
	assert.Len(t, buf, 100)
	assert.Zero(t, arena.SizeInUse())

	buf, err = alloc.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, buf)
}

func TestSafeArenaSharedByVectors(t *testing.T) {
	s := NewSafeArena(1 << 12)
	alloc, err := NewArenaAllocator[int64](s)
	require.NoError(t, err)

	const workers = 8
	const perWorker = 500

	var wg sync.WaitGroup
	results := make([][]int64, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			vec := New(WithAllocator[int64](alloc))
			for i := 0; i < perWorker; i++ {
				if err := vec.PushBack(int64(w*perWorker + i)); err != nil {
					return
				}
			}
			results[w] = append([]int64(nil), vec.Slice()...)
			vec.Release()
		}(w)
	}
	wg.Wait()

	for w, got := range results {
		require.Len(t, got, perWorker)
		for i, x := range got {
			require.Equal(t, int64(w*perWorker+i), x)
		}
	}
	assert.Greater(t, s.Metrics().SizeInUse, 0)
}
