package vector

import (
	"fmt"
	"testing"
)

func TestNewRegion(t *testing.T) {
	tests := []struct {
		name       string
		chunkElems int
		expected   int
	}{
		{"default chunk length", 0, DefaultChunkElems},
		{"negative chunk length", -1, DefaultChunkElems},
		{"custom chunk length", 512, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegion[int](tt.chunkElems)
			if r.ChunkElems() != tt.expected {
				t.Errorf("NewRegion(%d) chunk length = %d, want %d", tt.chunkElems, r.ChunkElems(), tt.expected)
			}
			if r.NumChunks() != 1 {
				t.Errorf("NewRegion(%d) chunks = %d, want 1", tt.chunkElems, r.NumChunks())
			}
		})
	}
}

func TestRegionAlloc(t *testing.T) {
	r := NewRegion[int](1024)

	s1 := r.Alloc(100)
	if len(s1) != 100 || cap(s1) != 100 {
		t.Errorf("Alloc(100) len/cap = %d/%d, want 100/100", len(s1), cap(s1))
	}

	if s := r.Alloc(0); s != nil {
		t.Errorf("Alloc(0) = %v, want nil", s)
	}
	if s := r.Alloc(-1); s != nil {
		t.Errorf("Alloc(-1) = %v, want nil", s)
	}

	s2 := r.Alloc(2000) // larger than a chunk
	if len(s2) != 2000 {
		t.Errorf("Alloc(2000) length = %d, want 2000", len(s2))
	}
	if r.NumChunks() != 2 {
		t.Errorf("NumChunks after large allocation = %d, want 2", r.NumChunks())
	}

	// Appending to a span must never write into its neighbour.
	s3 := r.Alloc(4)
	s4 := r.Alloc(4)
	s3 = append(s3, 99)
	if s4[0] != 0 {
		t.Errorf("append to earlier span overwrote later span: %v", s4)
	}
	_ = s3
}

func TestRegionExtend(t *testing.T) {
	r := NewRegion[int](64)

	s := r.Alloc(10)
	s[0] = 42
	grown, ok := r.Extend(s, 20)
	if !ok {
		t.Fatal("Extend of tail allocation failed")
	}
	if len(grown) != 20 || &grown[0] != &s[0] || grown[0] != 42 {
		t.Errorf("Extend(s, 20) did not grow in place: len %d", len(grown))
	}
	if r.SizeInUse() != 20 {
		t.Errorf("SizeInUse after Extend = %d, want 20", r.SizeInUse())
	}

	other := r.Alloc(4)
	if _, ok := r.Extend(grown, 30); ok {
		t.Error("Extend succeeded on a span that is not the tail")
	}
	if _, ok := r.Extend(other, 100); ok {
		t.Error("Extend succeeded beyond the chunk length")
	}
	if _, ok := r.Extend(nil, 8); ok {
		t.Error("Extend succeeded on a nil span")
	}
	if r.SizeInUse() != 24 {
		t.Errorf("SizeInUse after failed Extend = %d, want 24", r.SizeInUse())
	}
}

func TestRegionFree(t *testing.T) {
	r := NewRegion[int](64)
	a := r.Alloc(8)
	b := r.Alloc(8)

	r.Free(a) // not the tail, kept until Reset
	if r.SizeInUse() != 16 {
		t.Errorf("SizeInUse after freeing a non-tail span = %d, want 16", r.SizeInUse())
	}
	r.Free(b)
	if r.SizeInUse() != 8 {
		t.Errorf("SizeInUse after freeing the tail = %d, want 8", r.SizeInUse())
	}
	r.Free(a)
	if r.SizeInUse() != 0 {
		t.Errorf("SizeInUse after freeing everything = %d, want 0", r.SizeInUse())
	}
}

func TestRegionReset(t *testing.T) {
	r := NewRegion[int](1024)

	s := r.Alloc(4)
	for i := range s {
		s[i] = 7
	}
	r.Alloc(2000)
	if r.NumChunks() != 2 {
		t.Fatalf("NumChunks = %d, want 2", r.NumChunks())
	}

	r.Reset()
	if r.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset() = %d, want 0", r.SizeInUse())
	}

	z := r.AllocZeroed(4)
	for i, x := range z {
		if x != 0 {
			t.Errorf("AllocZeroed after Reset: element %d = %d, want 0", i, x)
		}
	}

	r.Alloc(2000) // fits the second, rewound chunk
	if r.NumChunks() != 2 {
		t.Errorf("NumChunks after reuse = %d, want 2", r.NumChunks())
	}
}

func TestRegionRelease(t *testing.T) {
	r := NewRegion[string](1024)
	r.Alloc(100)

	r.Release()
	if r.chunks != nil {
		t.Error("Expected chunks to be nil after Release()")
	}
	r.Free(nil) // no-op on a released region

	defer func() {
		if rec := recover(); rec == nil {
			t.Error("Expected panic on use after Release()")
		}
	}()
	r.Alloc(100)
}

func BenchmarkRegionAlloc(b *testing.B) {
	r := NewRegion[int64](1 << 16)
	sizes := []int{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r.Alloc(size)
				if i%1000 == 999 { // Reset periodically to avoid growing too much
					r.Reset()
				}
			}
		})
	}
}
