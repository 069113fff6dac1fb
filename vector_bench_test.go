package vector

import (
	"testing"

	"github.com/pavanmanishd/vector/alloc"
	"github.com/pavanmanishd/vector/arena"
)

type record struct {
	ID   int64
	Data [56]byte
}

// BenchmarkPushBack builds and tears down a vector of 1000 records per
// iteration under each strategy.
func BenchmarkPushBack(b *testing.B) {
	ar := arena.NewArena(1 << 20)
	defer ar.Release()
	arenaStrategy, err := alloc.NewArena[record](ar)
	if err != nil {
		b.Fatal(err)
	}
	offHeap, err := alloc.NewOffHeap[record]()
	if err != nil {
		b.Fatal(err)
	}
	defer offHeap.Close()
	mapped, err := alloc.NewMapped[record]()
	if err != nil {
		b.Fatal(err)
	}

	cases := []struct {
		name  string
		s     alloc.Strategy[record]
		reset func()
	}{
		{"Heap", alloc.Heap[record]{}, nil},
		{"Pool", alloc.NewPool[record](), nil},
		{"Arena", arenaStrategy, ar.Reset},
		{"OffHeap", offHeap, nil},
		{"Mapped", mapped, nil},
	}
	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := New(WithStrategy(bc.s))
				for j := 0; j < 1000; j++ {
					if err := v.PushBack(record{ID: int64(j)}); err != nil {
						b.Fatal(err)
					}
				}
				v.Release()
				if bc.reset != nil {
					bc.reset()
				}
			}
		})
	}
}

func BenchmarkInsertFront(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int64]()
		for j := 0; j < 256; j++ {
			if err := v.InsertAt(0, int64(j)); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkReserveThenPush(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int64]()
		if err := v.Reserve(1000); err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 1000; j++ {
			_ = v.PushBack(int64(j))
		}
	}
}
