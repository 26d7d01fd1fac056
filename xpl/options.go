package xpl

// Option configures a Context at Open time, following the teacher's
// composable VMOption/options/noption pattern.
type Option interface{ apply(ctx *Context) }

// Options composes a sequence of options into one, flattening nested
// Options values the way the teacher's VMOptions does.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(ctx *Context) {}

type options []Option

func (opts options) apply(ctx *Context) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ctx)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(ctx *Context) { ctx.logfn = logfn }

// WithLogf wires a printf-style logging sink, used the way the teacher
// wires WithLogf/Leveledf for TRACE output.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type withUserdata struct{ data interface{} }

func (u withUserdata) apply(ctx *Context) { ctx.Userdata = u.data }

// WithUserdata sets the opaque host pointer callbacks can retrieve from
// Context.Userdata. The core never inspects it.
func WithUserdata(data interface{}) Option { return withUserdata{data} }

type withStepLimit uint

func (lim withStepLimit) apply(ctx *Context) { ctx.stepLimit = uint(lim) }

// WithStepLimit bounds the number of dispatch steps Run will perform
// before it aborts with StatusErr. The count starts at Load or Reload and
// carries across Run calls resumed after a yield. It guards against runaway
// scripts (e.g. an if/then cycle with no yield). Zero means unbounded.
func WithStepLimit(limit uint) Option { return withStepLimit(limit) }
