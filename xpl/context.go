package xpl

// Context is the single interpreter-state object: a registry reference, the
// loaded script text, the shared scan cursor, the boolean accumulator and
// its composing mode, and an opaque host userdata slot. A Context is not
// safe for concurrent use.
type Context struct {
	registry *Registry

	text   string
	loaded bool
	cursor int

	boolValue     int
	boolComposing ComposeMode

	// Userdata is untouched by the core; hosts stash whatever they need
	// their callbacks to see.
	Userdata interface{}

	stepLimit uint
	steps     uint

	// branchClosed records whether the most recently returned "then" call
	// consumed its own matching endif internally (the taken-branch path) as
	// opposed to leaving it unconsumed for the enclosing dispatch loop to
	// see (the not-taken path). execBranch reads this immediately after
	// invoking a nested "then" to keep its if/endif depth counter correct
	// across nested conditionals; see control.go.
	branchClosed bool

	logging
}

// Open sorts the registry (if not already sorted) and returns a fresh
// Context bound to it. The registry must outlive the Context.
func Open(registry *Registry, opts ...Option) *Context {
	if registry == nil {
		panic("xpl: Open with nil registry")
	}
	if !registry.sorted {
		registry.sort()
	}
	ctx := &Context{registry: registry}
	Options(opts...).apply(ctx)
	return ctx
}

// Close detaches the context from its registry and script. The zero value
// that results is not usable until reopened with Open.
func (ctx *Context) Close() {
	*ctx = Context{}
}

// Load binds a new script to the context and resets the cursor and boolean
// accumulator state. If a script was already loaded, it is unloaded first.
func (ctx *Context) Load(text string) {
	if ctx.loaded {
		ctx.Unload()
	}
	ctx.text = text
	ctx.loaded = true
	ctx.cursor = 0
	ctx.boolValue = 0
	ctx.boolComposing = ComposeNil
	ctx.steps = 0
}

// Reload rewinds the cursor to the start of the current script, restoring
// the accumulator to its entry state, so that subsequent behaviour is
// identical to a fresh Load of the same text.
func (ctx *Context) Reload() {
	if !ctx.loaded {
		panic("xpl: Reload of unloaded context")
	}
	ctx.cursor = 0
	ctx.boolValue = 0
	ctx.boolComposing = ComposeNil
	ctx.steps = 0
}

// Unload detaches the script; the cursor becomes invalid until Load.
func (ctx *Context) Unload() {
	ctx.text = ""
	ctx.loaded = false
	ctx.cursor = 0
}

// Loaded reports whether a script is currently bound to the context.
func (ctx *Context) Loaded() bool { return ctx.loaded }

// AtEnd reports whether the cursor rests at end-of-input.
func (ctx *Context) AtEnd() bool { return ctx.loaded && ctx.cursor >= len(ctx.text) }

// Cursor reports the current scan position within the loaded text.
func (ctx *Context) Cursor() int { return ctx.cursor }

// Text returns the currently loaded script text.
func (ctx *Context) Text() string { return ctx.text }

// BoolValue reports the current state of the boolean accumulator.
func (ctx *Context) BoolValue() int { return ctx.boolValue }

// BoolComposing reports the accumulator's current composing mode.
func (ctx *Context) BoolComposing() ComposeMode { return ctx.boolComposing }

func (ctx *Context) requireLoaded() {
	if !ctx.loaded {
		panic("xpl: operation on unloaded context")
	}
}
