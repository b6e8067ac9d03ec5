// Package vector implements a generic resizable sequence with two storage
// backends behind one operation set.
//
// # Overview
//
// Vector[T] grows a contiguous buffer obtained from an Allocator. Static[T]
// is a handle to one fixed-width slot of a Pool[T]. Both implement
// Sequence[T], so addressing, element access, reversal, swapping, range
// emplacement and the Find functions behave identically on either.
//
// # Basic Usage
//
//	v, err := vector.New(0, 0)
//	if err != nil {
//		return err
//	}
//	defer v.Destroy()
//
//	for i := 1; i <= 5; i++ {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	_ = v.Insert(1, 9)
//	_ = v.Reverse(0, v.Len())
//	i := vector.FindFirstOf[int](v, 9)
//
// # Fixed-slot pools
//
//	pool, _ := vector.NewPool[byte](2, 64)
//	a, _ := pool.Create(0)
//	b, _ := pool.Create(0)
//	_, err := pool.Create(0) // ErrPoolExhausted
//	a.Destroy()              // the slot is free again
//
// # Growth
//
// An empty vector first grows to Config.InitialCapacity (8), then doubles
// until the request fits. Config.LowMemory switches to an initial capacity
// of 4 and a factor of 1.5. Capacity never shrinks.
//
// # Errors
//
// Every fallible operation returns an error wrapping one of ErrAllocation,
// ErrIndexOutOfRange, ErrNullInput, ErrCapacity or ErrPoolExhausted; CodeOf
// maps it to a Code. A failed operation leaves the sequence unchanged. A
// capacity failure caused by the allocator matches both ErrCapacity and
// ErrAllocation.
//
// # Iterators
//
// Iterators remember the buffer and epoch they were taken from. Any
// operation that may relocate or shift a vector's elements, and releasing a
// pool slot, makes them stale; stale iterators are rejected with
// ErrIndexOutOfRange.
//
// # Allocators
//
// HeapAllocator uses the Go heap. RegionAllocator carves storage out of a
// chunked Region and extends the most recent allocation in place.
// LimitAllocator enforces an element budget on top of another allocator.
//
// # Thread Safety
//
// Vectors, pools and regions are not synchronized. SafePool serializes slot
// acquisition and release for pools shared between goroutines; handle access
// on a shared pool runs inside SafePool.Do.
package vector
