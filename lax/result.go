package lax

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dzonerzy/go-lax/internal/fuzzy"
	"github.com/dzonerzy/go-lax/internal/pool"
)

// resultPool recycles Result container sets across parses to reduce GC
// pressure when a parser is run repeatedly.
var resultPool = pool.NewPoolWithReset(
	func() *Result {
		return &Result{
			pos:    make([]string, 0, 8),
			flags:  make(map[string]int, 8),
			params: make(map[string][]string, 8),
		}
	},
	func(r *Result) {
		r.pos = r.pos[:0]
		clear(r.flags)
		clear(r.params)
	},
)

// Result is the classified output of one parse pass: the positional
// arguments in input order, the flag multiset (name to occurrence
// count) and the parameter mapping (name to its values in input order;
// repeated names keep every value). A Result is written once during
// parsing; every accessor is read-only, so a Result may be shared
// between goroutines once Parse has returned.
type Result struct {
	pos    []string
	flags  map[string]int
	params map[string][]string
}

func newResult() *Result {
	return resultPool.Get()
}

// Release returns the Result's containers to the internal pool. Only
// call it once no accessor or previously returned view is in use.
func (r *Result) Release() {
	resultPool.Put(r)
}

func (r *Result) addFlag(name string) {
	r.flags[name]++
}

func (r *Result) addParam(name, value string) {
	r.params[name] = append(r.params[name], value)
}

// Flag reports whether any of the given names occurred as a flag.
// Leading dashes on the queried names are ignored.
func (r *Result) Flag(names ...string) bool {
	for _, n := range names {
		if r.flags[trimLeadingDashes(n)] > 0 {
			return true
		}
	}
	return false
}

// FlagCount returns how many times name occurred as a flag, so a
// repeated -v -v is observable as 2.
func (r *Result) FlagCount(name string) int {
	return r.flags[trimLeadingDashes(name)]
}

// Len returns the number of positional arguments.
func (r *Result) Len() int {
	return len(r.pos)
}

// Pos returns the positional argument at index i, or "" when i is out
// of range. Out-of-range access is not an error.
func (r *Result) Pos(i int) string {
	if i >= 0 && i < len(r.pos) {
		return r.pos[i]
	}
	return ""
}

// Positionals returns the positional arguments in input order. The
// slice is the Result's own storage; callers must not modify it.
func (r *Result) Positionals() []string {
	return r.pos
}

// ParamValues returns every value recorded for name, in input order.
// The slice is the Result's own storage; callers must not modify it.
func (r *Result) ParamValues(name string) []string {
	return r.params[trimLeadingDashes(name)]
}

// PosVal returns a typed handle over the positional argument at i; the
// handle is failed when i is out of range.
func (r *Result) PosVal(i int) Value {
	if i >= 0 && i < len(r.pos) {
		return Value{text: r.pos[i], present: true}
	}
	return Value{}
}

// PosOr is PosVal with a default substituted when i is out of range.
// The default is rendered to text with fmt.Sprint, so PosOr(3, 7) and
// PosOr(3, "7") wrap the same handle.
func (r *Result) PosOr(i int, def any) Value {
	if v := r.PosVal(i); v.Valid() {
		return v
	}
	return Value{text: fmt.Sprint(def), present: true}
}

// Param returns a typed handle over the first of names that has a
// stored value; remaining alternatives are not consulted. For a name
// that occurred more than once the first stored value wins. With no
// match the handle is failed.
func (r *Result) Param(names ...string) Value {
	for _, n := range names {
		if vs := r.params[trimLeadingDashes(n)]; len(vs) > 0 {
			return Value{text: vs[0], present: true}
		}
	}
	return Value{}
}

// ParamOr is Param with a default substituted when no name matches.
func (r *Result) ParamOr(def any, names ...string) Value {
	if v := r.Param(names...); v.Valid() {
		return v
	}
	return Value{text: fmt.Sprint(def), present: true}
}

// Suggest returns the recorded flag or parameter name closest to name,
// for "did you mean" reporting after a lookup miss. It returns "" when
// nothing is within edit distance 2.
func (r *Result) Suggest(name string) string {
	candidates := make([]string, 0, len(r.flags)+len(r.params))
	for n := range r.flags {
		candidates = append(candidates, n)
	}
	for n := range r.params {
		candidates = append(candidates, n)
	}
	return fuzzy.FindBest(trimLeadingDashes(name), candidates, 2)
}

// String renders the classified store with stable ordering, for
// debugging and example output.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "positional: %q\n", r.pos)

	flagNames := make([]string, 0, len(r.flags))
	for n := range r.flags {
		flagNames = append(flagNames, n)
	}
	sort.Strings(flagNames)
	b.WriteString("flags:")
	for _, n := range flagNames {
		if c := r.flags[n]; c > 1 {
			fmt.Fprintf(&b, " %s(x%d)", n, c)
		} else {
			fmt.Fprintf(&b, " %s", n)
		}
	}
	b.WriteByte('\n')

	paramNames := make([]string, 0, len(r.params))
	for n := range r.params {
		paramNames = append(paramNames, n)
	}
	sort.Strings(paramNames)
	b.WriteString("params:")
	for _, n := range paramNames {
		fmt.Fprintf(&b, " %s=%q", n, r.params[n])
	}
	return b.String()
}
