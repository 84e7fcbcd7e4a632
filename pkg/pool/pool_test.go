package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Parallelize(t *testing.T) {
	square := func(i int) interface{} { return i * i }

	for _, pl := range []*Pool{nil, NewPool(1), NewPool(4), NewPool(0)} {
		results := pl.Parallelize(100, square)
		require.Len(t, results, 100)
		for i, r := range results {
			assert.Equal(t, i*i, r)
		}
		pl.TearDown()
	}
}

func TestPool_Workers(t *testing.T) {
	var pl *Pool
	assert.Equal(t, 1, pl.Workers())
	pl = NewPool(3)
	defer pl.TearDown()
	assert.Equal(t, 3, pl.Workers())
}

func TestLockedReader(t *testing.T) {
	const readers, chunk = 8, 16
	src := make([]byte, readers*chunk)
	for i := range src {
		src[i] = byte(i)
	}
	r := NewLockedReader(bytes.NewReader(src))

	var (
		wg  sync.WaitGroup
		mtx sync.Mutex
		got [][]byte
	)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]byte, chunk)
			_, err := io.ReadFull(r, buf)
			assert.NoError(t, err)
			mtx.Lock()
			got = append(got, buf)
			mtx.Unlock()
		}()
	}
	wg.Wait()

	// Every byte of the source is read exactly once.
	seen := make(map[byte]int)
	for _, buf := range got {
		for _, b := range buf {
			seen[b]++
		}
	}
	assert.Len(t, seen, len(src))
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}
