package arena

import (
	"errors"
	"fmt"
)

// Example demonstrates basic arena usage
func Example() {
	a := NewArena(0)
	defer a.Release()

	buf, _ := a.Alloc(1024, 8)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	ints, _ := Slice[int64](a, 5)
	for i := range ints {
		ints[i] = int64(i * 2)
	}
	fmt.Printf("Allocated slice: %v\n", ints)

	fmt.Printf("Memory in use: %d bytes\n", a.SizeInUse())
	fmt.Printf("Utilization: %.2f%%\n", a.Utilization()*100)

	a.Reset()
	fmt.Printf("After reset, memory in use: %d bytes\n", a.SizeInUse())

	// Output:
	// Allocated buffer of size: 1024
	// Allocated slice: [0 2 4 6 8]
	// Memory in use: 1064 bytes
	// Utilization: 1.62%
	// After reset, memory in use: 0 bytes
}

// ExampleArena_Reset demonstrates arena reuse with Reset
func ExampleArena_Reset() {
	a := NewArena(1024)
	defer a.Release()

	for round := 1; round <= 3; round++ {
		for i := 0; i < 5; i++ {
			Slice[int64](a, 1)
		}

		fmt.Printf("Round %d - Memory in use: %d bytes\n", round, a.SizeInUse())

		a.Reset()
	}

	// Output:
	// Round 1 - Memory in use: 40 bytes
	// Round 2 - Memory in use: 40 bytes
	// Round 3 - Memory in use: 40 bytes
}

// ExampleWithMaxBytes shows a budgeted arena refusing to grow.
func ExampleWithMaxBytes() {
	a := NewArena(64, WithMaxBytes(64))
	defer a.Release()

	_, err := Slice[int64](a, 8)
	fmt.Println("first:", err)

	_, err = Slice[int64](a, 1)
	fmt.Println("second exhausted:", errors.Is(err, ErrExhausted))

	// Output:
	// first: <nil>
	// second exhausted: true
}

// ExampleArena_Metrics demonstrates monitoring arena usage
func ExampleArena_Metrics() {
	a := NewArena(1024)
	defer a.Release()

	a.Alloc(100, 8)
	a.Alloc(200, 8)

	m := a.Metrics()
	fmt.Printf("In use: %d, capacity: %d, chunks: %d, allocations: %d\n",
		m.SizeInUse, m.Capacity, m.NumChunks, m.Allocations)

	// Output:
	// In use: 304, capacity: 1024, chunks: 1, allocations: 2
}
