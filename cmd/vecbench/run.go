package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/alloc"
)

var workloads = []string{"append", "insert", "erase", "mixed"}

type runOptions struct {
	strategy string
	elements int
	workload string
	logged   bool
}

func newRunCmd(g *globalFlags) *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workload and report strategy traffic",
		Long: `The run command applies a workload to a vector of int64 backed by the
chosen strategy, then releases it and reports what happened.

Workloads:
  append  push N elements onto the back
  insert  insert N elements at the middle
  erase   fill N elements, then erase them one by one from the front
  mixed   interleave pushes, middle inserts, erases and pops

Example:
  vecbench run --strategy arena --elements 100000
  vecbench run --strategy pool --workload mixed --json
  vecbench run --strategy mapped --elements 16 --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.logged = g.loggingEnabled()
			r, err := runWorkload(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if g.jsonOut {
				return printJSON(out, r)
			}
			renderReport(out, r, !g.noColor)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.strategy, "strategy", "heap", "Allocation strategy ("+strings.Join(strategyNames(), ", ")+")")
	cmd.Flags().IntVar(&opts.elements, "elements", 10000, "Number of elements the workload handles")
	cmd.Flags().StringVar(&opts.workload, "workload", "append", "Workload ("+strings.Join(workloads, ", ")+")")
	return cmd
}

// runWorkload resolves the strategy and workload named in opts and measures
// them.
func runWorkload(opts runOptions) (*report, error) {
	if opts.elements < 0 {
		return nil, fmt.Errorf("--elements must not be negative, got %d", opts.elements)
	}
	work, err := workloadFunc(opts.workload)
	if err != nil {
		return nil, err
	}
	base, cleanup, err := newStrategy(opts.strategy, opts.elements)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return measure(opts, base, work)
}

// measure runs work on a vector over base wrapped in alloc.Counting. The
// vector is released on every path.
func measure(opts runOptions, base alloc.Strategy[int64], work workload) (*report, error) {
	var s alloc.Strategy[int64] = base
	if opts.logged {
		s = alloc.NewLogged(s, nil)
	}
	counted := alloc.NewCounting(s)
	v := vector.New(vector.WithStrategy[int64](counted))

	r := &report{
		Strategy: opts.strategy,
		Workload: opts.workload,
		Elements: opts.elements,
	}
	observe := func() {
		if c := v.Cap(); len(r.Growth) == 0 || r.Growth[len(r.Growth)-1] != c {
			r.Growth = append(r.Growth, c)
		}
	}

	start := time.Now()
	if err := work(v, opts.elements, observe); err != nil {
		v.Release()
		return nil, fmt.Errorf("%s workload: %w", opts.workload, err)
	}
	r.Elapsed = time.Since(start)

	r.Len, r.Cap = v.Len(), v.Cap()
	r.Metrics = counted.Metrics()
	r.Live = r.Metrics.Live()
	if r.Live != r.Len {
		v.Release()
		return nil, fmt.Errorf("strategy saw %d live elements, vector holds %d", r.Live, r.Len)
	}

	v.Release()
	after := counted.Metrics()
	r.LiveAfterRelease = after.Live()
	r.SlotsAfterRelease = after.SlotsInUse
	return r, nil
}

type workload func(v *vector.Vector[int64], n int, observe func()) error

func workloadFunc(name string) (workload, error) {
	switch name {
	case "append":
		return appendWorkload, nil
	case "insert":
		return insertWorkload, nil
	case "erase":
		return eraseWorkload, nil
	case "mixed":
		return mixedWorkload, nil
	}
	return nil, fmt.Errorf("unknown workload %q (want one of %s)", name, strings.Join(workloads, ", "))
}

func appendWorkload(v *vector.Vector[int64], n int, observe func()) error {
	for i := range n {
		if err := v.PushBack(int64(i)); err != nil {
			return err
		}
		observe()
	}
	return nil
}

func insertWorkload(v *vector.Vector[int64], n int, observe func()) error {
	for i := range n {
		if err := v.InsertAt(v.Len()/2, int64(i)); err != nil {
			return err
		}
		observe()
	}
	return nil
}

func eraseWorkload(v *vector.Vector[int64], n int, observe func()) error {
	if err := v.AssignCount(n, 1); err != nil {
		return err
	}
	observe()
	for !v.IsEmpty() {
		if err := v.Erase(v.Begin()); err != nil {
			return err
		}
	}
	return nil
}

// mixedWorkload cycles through push, push, middle insert and an erase or pop,
// so the vector grows by about half an element per step.
func mixedWorkload(v *vector.Vector[int64], n int, observe func()) error {
	for i := range n {
		var err error
		switch i % 4 {
		case 0, 1:
			err = v.PushBack(int64(i))
		case 2:
			err = v.InsertAt(v.Len()/2, int64(i))
		case 3:
			if i%8 == 3 {
				err = v.Erase(v.Begin().Advance(v.Len() / 3))
			} else {
				err = v.PopBack()
			}
		}
		if err != nil {
			return err
		}
		observe()
	}
	return nil
}
