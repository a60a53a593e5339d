package bigobench

// Arg wraps one positional argument of a profiled operation. The closed
// set of shapes replaces "does it have a length and support slicing"
// reflection: Seq and Text carry a measurable, truncatable size, Size is
// a bare problem-size integer, Opaque is everything else.
type Arg interface {
	// Value is the unwrapped argument handed to the operation.
	Value() any

	// size reports the argument's problem size, if it has one.
	size() (int, bool)

	// sliceable reports whether prefix can actually cut the argument
	// down to a smaller size.
	sliceable() bool

	// prefix returns a copy of the argument truncated to n elements.
	// Non-sliceable arguments return themselves unchanged.
	prefix(n int) Arg
}

type seqArg[E any] struct {
	s []E
}

// Seq wraps a slice argument. Its length is the problem size, and
// analysis samples the operation on defensively-copied prefixes, so the
// caller's slice is never mutated or shared with resized calls.
func Seq[E any](s []E) Arg { return seqArg[E]{s: s} }

func (a seqArg[E]) Value() any { return a.s }
func (a seqArg[E]) size() (int, bool) { return len(a.s), true }
func (a seqArg[E]) sliceable() bool { return true }

func (a seqArg[E]) prefix(n int) Arg {
	if n > len(a.s) {
		n = len(a.s)
	}
	c := make([]E, n)
	copy(c, a.s[:n])
	return seqArg[E]{s: c}
}

type textArg struct {
	s string
}

// Text wraps a string argument; byte length is the problem size.
func Text(s string) Arg { return textArg{s: s} }

func (a textArg) Value() any { return a.s }
func (a textArg) size() (int, bool) { return len(a.s), true }
func (a textArg) sliceable() bool { return true }

func (a textArg) prefix(n int) Arg {
	if n > len(a.s) {
		n = len(a.s)
	}
	return textArg{s: a.s[:n]}
}

type sizeArg struct {
	n int
}

// Size wraps a bare integer that stands for the problem size itself.
// It anchors the sample schedule but is not scaled down: resized calls
// still receive the original value, so an operation whose only sizable
// argument is a bare Size runs at full size for every scheduled point.
func Size(n int) Arg { return sizeArg{n: n} }

func (a sizeArg) Value() any { return a.n }
func (a sizeArg) size() (int, bool) { return a.n, a.n > 0 }
func (a sizeArg) sliceable() bool { return false }
func (a sizeArg) prefix(int) Arg { return a }

type opaqueArg struct {
	v any
}

// Opaque wraps an argument with no notion of size. It is passed through
// untouched and never drives analysis.
func Opaque(v any) Arg { return opaqueArg{v: v} }

func (a opaqueArg) Value() any { return a.v }
func (a opaqueArg) size() (int, bool) { return 0, false }
func (a opaqueArg) sliceable() bool { return false }
func (a opaqueArg) prefix(int) Arg { return a }

// locateSizable finds the argument that drives complexity analysis: the
// first sliceable argument with a length wins; failing that, the first
// positive bare Size. Purely inspects, never mutates.
func locateSizable(args []Arg) (index, maxSize int, ok bool) {
	for i, a := range args {
		if n, has := a.size(); has && a.sliceable() {
			return i, n, true
		}
	}
	for i, a := range args {
		if n, has := a.size(); has {
			return i, n, true
		}
	}
	return 0, 0, false
}

// resizeArgs returns a fresh argument list with the argument at index
// truncated to target elements. The input list and its arguments are
// left untouched; non-sliceable arguments pass through unchanged.
func resizeArgs(args []Arg, index, target int) []Arg {
	out := make([]Arg, len(args))
	copy(out, args)
	out[index] = args[index].prefix(target)
	return out
}

// argValues unwraps the argument list for an actual invocation.
func argValues(args []Arg) []any {
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a.Value()
	}
	return vals
}
