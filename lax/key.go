package lax

import "fmt"

// Key identifies one lookup target for Result.Lookup: a positional
// index, a single parameter name, or an ordered list of alternative
// parameter names. One lookup function over a tagged key replaces a
// spread of per-shape accessor entry points.
type Key struct {
	index   int
	names   []string
	byIndex bool
}

// Index keys a lookup by positional index.
func Index(i int) Key {
	return Key{index: i, byIndex: true}
}

// Name keys a lookup by a single parameter name.
func Name(name string) Key {
	return Key{names: []string{name}}
}

// Names keys a lookup by a list of alternative parameter names; the
// first name with a stored value wins.
func Names(names ...string) Key {
	return Key{names: names}
}

// Lookup resolves key against the Result and returns a typed handle;
// the handle is failed on a miss.
func (r *Result) Lookup(k Key) Value {
	if k.byIndex {
		return r.PosVal(k.index)
	}
	return r.Param(k.names...)
}

// LookupOr is Lookup with a default substituted on a miss. The default
// is rendered to text with fmt.Sprint.
func (r *Result) LookupOr(k Key, def any) Value {
	if v := r.Lookup(k); v.Valid() {
		return v
	}
	return Value{text: fmt.Sprint(def), present: true}
}
