package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector/alloc"
	"github.com/pavanmanishd/vector/arena"
)

type strategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var strategyList = []strategyInfo{
	{"heap", "Go heap slices reclaimed by the garbage collector (default)"},
	{"pool", "power-of-two buffers recycled through sync.Pool"},
	{"arena", "bump-allocated from a chunked arena, reclaimed all at once"},
	{"offheap", "malloc-style allocator over mmap, outside the Go heap"},
	{"mapped", "one anonymous memory mapping per buffer"},
}

func strategyNames() []string {
	names := make([]string, len(strategyList))
	for i, s := range strategyList {
		names[i] = s.Name
	}
	return names
}

// newStrategy builds the named strategy for a workload of about elements
// int64 values. The returned cleanup releases whatever backs it.
func newStrategy(name string, elements int) (alloc.Strategy[int64], func(), error) {
	nop := func() {}
	switch name {
	case "heap":
		return alloc.Heap[int64]{}, nop, nil
	case "pool":
		return alloc.NewPool[int64](), nop, nil
	case "arena":
		ar := arena.NewArena(0)
		// Doubling growth allocates under 2x the final capacity in total,
		// and the final capacity is under 2x the element count.
		if err := ar.EnsureCapacity(4 * 8 * max(elements, 1)); err != nil {
			return nil, nil, fmt.Errorf("size arena: %w", err)
		}
		s, err := alloc.NewArena[int64](ar)
		if err != nil {
			ar.Release()
			return nil, nil, err
		}
		return s, ar.Release, nil
	case "offheap":
		s, err := alloc.NewOffHeap[int64]()
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "mapped":
		s, err := alloc.NewMapped[int64]()
		if err != nil {
			return nil, nil, err
		}
		return s, nop, nil
	}
	return nil, nil, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(strategyNames(), ", "))
}

func newStrategiesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available allocation strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if g.jsonOut {
				return printJSON(out, strategyList)
			}
			width := len(slices.MaxFunc(strategyList, func(a, b strategyInfo) int {
				return len(a.Name) - len(b.Name)
			}).Name)
			for _, s := range strategyList {
				fmt.Fprintf(out, "%-*s  %s\n", width, s.Name, s.Description)
			}
			return nil
		},
	}
}
