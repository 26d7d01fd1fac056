package xpl

import "sort"

// builtinKind tags a registry entry with its control-flow role, if any.
// Rather than recognizing if/then/elseif/else/endif/or/and/yield by
// comparing callback identity, every entry carries its kind and control.go
// switches on it directly.
type builtinKind int

const (
	kindUser builtinKind = iota
	kindIf
	kindThen
	kindElseif
	kindElse
	kindEndif
	kindOr
	kindAnd
	kindYield
)

type entry struct {
	name string
	fn   Callback
	kind builtinKind
}

// Callback is a host-provided function registered by name and invocable
// from script.
type Callback func(ctx *Context) Status

// Registry is an ordered table of (name, callback) pairs, built once and
// sorted by name. It is immutable once passed to Open.
type Registry struct {
	entries []entry
	sorted  bool
}

// NewRegistry builds a registry from the given named callbacks, always
// including the eight built-in control-flow keywords in addition to the
// caller's table. Registering a name that collides with a built-in or with
// another caller entry is a programmer error.
func NewRegistry(callbacks map[string]Callback) *Registry {
	r := &Registry{}
	for _, b := range builtins {
		r.entries = append(r.entries, entry{name: b.name, fn: b.fn, kind: b.kind})
	}
	for name, fn := range callbacks {
		if name == "" {
			panic("xpl: registry entry with empty name")
		}
		for _, e := range r.entries {
			if e.name == name {
				panic("xpl: duplicate registry name " + name)
			}
		}
		r.entries = append(r.entries, entry{name: name, fn: fn, kind: kindUser})
	}
	r.sort()
	return r
}

var builtins = []entry{
	{name: "if", kind: kindIf, fn: func(ctx *Context) Status { return StatusOK }},
	{name: "then", kind: kindThen, fn: (*Context).evalThen},
	{name: "elseif", kind: kindElseif, fn: func(ctx *Context) Status { return StatusOK }},
	{name: "else", kind: kindElse, fn: func(ctx *Context) Status { return StatusOK }},
	{name: "endif", kind: kindEndif, fn: func(ctx *Context) Status { return StatusOK }},
	{name: "or", kind: kindOr, fn: func(ctx *Context) Status { ctx.boolComposing = ComposeOr; return StatusOK }},
	{name: "and", kind: kindAnd, fn: func(ctx *Context) Status { ctx.boolComposing = ComposeAnd; return StatusOK }},
	{name: "yield", kind: kindYield, fn: func(ctx *Context) Status { return StatusSuspend }},
}

func (r *Registry) sort() {
	sort.Slice(r.entries, func(i, j int) bool { return r.entries[i].name < r.entries[j].name })
	r.sorted = true
}

// lookup binary searches the registry using text[pos:] as key, where the
// key ends at the first separator byte (or end of text), exactly as if
// that separator had been substituted with a NUL terminator. It returns the
// matching entry and the length of the matched name, or ok=false.
func (r *Registry) lookup(text string, pos int) (e entry, length int, ok bool) {
	end := pos
	for end < len(text) && !isSeparator(text[end]) {
		end++
	}
	key := text[pos:end]
	if key == "" {
		return entry{}, 0, false
	}
	i := sort.Search(len(r.entries), func(i int) bool { return r.entries[i].name >= key })
	if i < len(r.entries) && r.entries[i].name == key {
		return r.entries[i], len(key), true
	}
	return entry{}, 0, false
}
