package vector_test

import (
	"fmt"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/alloc"
	"github.com/pavanmanishd/vector/arena"
)

func Example() {
	v := vector.New[int]()
	for i := range 10 {
		if err := v.PushBack(i); err != nil {
			panic(err)
		}
	}
	fmt.Println(v.Len(), v.Cap())
	fmt.Println(v)
	// Output:
	// 10 16
	// [0 1 2 3 4 5 6 7 8 9]
}

func ExampleNewFilled() {
	v, _ := vector.NewFilled(5, 42)
	fmt.Println(v, v.Cap())
	// Output: [42 42 42 42 42] 10
}

func ExampleVector_EraseRange() {
	v, _ := vector.FromSlice([]int{1, 2, 3, 4, 5})
	_ = v.EraseRange(v.Begin().Next(), v.Begin().Advance(4))
	fmt.Println(v)
	// Output: [1 5]
}

func ExampleVector_RBegin() {
	v, _ := vector.FromSlice([]string{"a", "b", "c"})
	for r := v.RBegin(); !r.Equal(v.REnd()); r = r.Next() {
		fmt.Print(r.Get())
	}
	fmt.Println()
	// Output: cba
}

func ExampleWithStrategy() {
	ar := arena.NewArena(4096)
	defer ar.Release()

	a, err := alloc.NewArena[float64](ar)
	if err != nil {
		panic(err)
	}
	counted := alloc.NewCounting[float64](a)

	v := vector.New(vector.WithStrategy[float64](counted))
	for i := range 100 {
		_ = v.PushBack(float64(i))
	}
	m := counted.Metrics()
	fmt.Printf("len %d, cap %d, buffers %d, moves %d\n", v.Len(), v.Cap(), m.Allocations, m.Moves)

	v.Release()
	fmt.Println("live after release:", counted.Metrics().Live())
	// Output:
	// len 100, cap 128, buffers 8, moves 127
	// live after release: 0
}
