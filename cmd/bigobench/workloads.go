package main

import (
	"fmt"
	"sort"

	"github.com/alexshd/bigobench"
)

// workload is one built-in demonstration operation with a known growth
// class, used to exercise the profiler end to end.
type workload struct {
	Name     string
	Desc     string
	Size     int // default natural input size
	Expected bigobench.Complexity
	Fn       bigobench.Func
	Args     func(n int) []bigobench.Arg
}

func intRamp(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}

var workloads = []workload{
	{
		Name:     "sum",
		Desc:     "single pass summing every element",
		Size:     4096,
		Expected: bigobench.ON,
		Fn: func(args ...any) (any, error) {
			xs := args[0].([]int)
			total := 0
			for _, x := range xs {
				total += x
			}
			return total, nil
		},
		Args: func(n int) []bigobench.Arg {
			return []bigobench.Arg{bigobench.Seq(intRamp(n))}
		},
	},
	{
		Name:     "search",
		Desc:     "binary search for the last element",
		Size:     4096,
		Expected: bigobench.OLogN,
		Fn: func(args ...any) (any, error) {
			xs := args[0].([]int)
			i, found := sort.Find(len(xs), func(i int) int {
				return len(xs) - 1 - xs[i]
			})
			if !found {
				return nil, fmt.Errorf("target %d not found", len(xs)-1)
			}
			return i, nil
		},
		Args: func(n int) []bigobench.Arg {
			return []bigobench.Arg{bigobench.Seq(intRamp(n))}
		},
	},
	{
		Name:     "sort",
		Desc:     "sort a reversed copy of the input",
		Size:     4096,
		Expected: bigobench.ONLogN,
		Fn: func(args ...any) (any, error) {
			xs := args[0].([]int)
			c := make([]int, len(xs))
			for i, x := range xs {
				c[len(xs)-1-i] = x
			}
			sort.Ints(c)
			return c[0], nil
		},
		Args: func(n int) []bigobench.Arg {
			return []bigobench.Arg{bigobench.Seq(intRamp(n))}
		},
	},
	{
		Name:     "pairs",
		Desc:     "all-pairs accumulation",
		Size:     512,
		Expected: bigobench.ON2,
		Fn: func(args ...any) (any, error) {
			xs := args[0].([]int)
			total := 0
			for _, a := range xs {
				for _, b := range xs {
					total += a + b
				}
			}
			return total, nil
		},
		Args: func(n int) []bigobench.Arg {
			return []bigobench.Arg{bigobench.Seq(intRamp(n))}
		},
	},
	{
		Name:     "triples",
		Desc:     "all-triples accumulation",
		Size:     96,
		Expected: bigobench.ON3,
		Fn: func(args ...any) (any, error) {
			xs := args[0].([]int)
			total := 0
			for _, a := range xs {
				for _, b := range xs {
					for _, c := range xs {
						total += a + b + c
					}
				}
			}
			return total, nil
		},
		Args: func(n int) []bigobench.Arg {
			return []bigobench.Arg{bigobench.Seq(intRamp(n))}
		},
	},
}

func findWorkload(name string) (workload, bool) {
	for _, w := range workloads {
		if w.Name == name {
			return w, true
		}
	}
	return workload{}, false
}
