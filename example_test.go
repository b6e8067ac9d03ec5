package vector_test

import (
	"errors"
	"fmt"

	"github.com/pavanmanishd/vector"
)

// Example walks through the basic vector operations.
func Example() {
	v, err := vector.New(0, 0)
	if err != nil {
		panic(err)
	}
	defer v.Destroy()

	for i := 1; i <= 5; i++ {
		_ = v.PushBack(i)
	}
	fmt.Println(v.Data(), v.Len(), v.Cap())

	_ = v.Erase(1)
	fmt.Println(v.Data())

	_ = v.Insert(1, 9)
	fmt.Println(v.Data())

	_ = v.Reverse(0, v.Len())
	fmt.Println(v.Data())

	_ = v.Swap(0, 4)
	fmt.Println(v.Data())

	fmt.Println("9 at", vector.FindFirstOf[int](v, 9))

	// Output:
	// [1 2 3 4 5] 5 8
	// [1 3 4 5]
	// [1 9 3 4 5]
	// [5 4 3 9 1]
	// [1 4 3 9 5]
	// 9 at 3
}

// ExampleNewPool demonstrates slot exhaustion and reuse.
func ExampleNewPool() {
	pool, err := vector.NewPool[byte](2, 4)
	if err != nil {
		panic(err)
	}

	a, _ := pool.Create('a')
	b, _ := pool.Create('b')
	_, err = pool.Create('c')
	fmt.Println(errors.Is(err, vector.ErrPoolExhausted), vector.CodeOf(err))

	a.Destroy()
	c, _ := pool.Create('c')
	fmt.Println(c.Handle(), string(c.Data()), string(b.Data()))

	// Output:
	// true pool exhausted
	// 0 cccc bbbb
}

// Example_reserve shows the capacity the growth engine settles on.
func Example_reserve() {
	v, _ := vector.New(1, "x")
	fmt.Println(v.Cap())
	_ = v.Reserve(50)
	fmt.Println(v.Cap())

	// Output:
	// 8
	// 64
}

// ExampleDefaultConfig compares the default and low-memory growth profiles.
func ExampleDefaultConfig() {
	cfg := vector.DefaultConfig()
	plan, _ := cfg.GrowthPlan(100)
	fmt.Println(plan)

	cfg.LowMemory = true
	cfg.InitialCapacity = 0
	plan, _ = cfg.GrowthPlan(100)
	fmt.Println(plan)

	// Output:
	// [8 16 32 64 128]
	// [4 6 9 13 19 28 42 63 94 141]
}

// ExampleRegionAllocator shows a vector growing in place inside a region and
// the region being recycled between rounds.
func ExampleRegionAllocator() {
	region := vector.NewRegion[int64](1000)
	defer region.Release()

	for round := 1; round <= 3; round++ {
		v, _ := vector.New(0, int64(0), vector.WithAllocator[int64](vector.NewRegionAllocator(region)))
		for i := 0; i < 40; i++ {
			_ = v.PushBack(int64(i))
		}
		m := region.Metrics()
		fmt.Printf("Round %d - in use: %d elements, %d chunk(s), %.1f%%\n", round, m.SizeInUse, m.NumChunks, m.Utilization*100)
		region.Reset()
	}

	// Output:
	// Round 1 - in use: 64 elements, 1 chunk(s), 6.4%
	// Round 2 - in use: 64 elements, 1 chunk(s), 6.4%
	// Round 3 - in use: 64 elements, 1 chunk(s), 6.4%
}

// ExampleLimitAllocator shows a failed growth leaving the vector intact.
func ExampleLimitAllocator() {
	lim := vector.NewLimitAllocator[int](vector.HeapAllocator[int]{}, 8)
	v, _ := vector.New(8, 1, vector.WithAllocator[int](lim))

	err := v.PushBack(2)
	fmt.Println(errors.Is(err, vector.ErrCapacity), errors.Is(err, vector.ErrAllocation))
	fmt.Println(v.Len(), v.Cap(), lim.Used())

	// Output:
	// true true
	// 8 8 8
}
