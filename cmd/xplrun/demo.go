package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/xpl/internal/runeio"
	"github.com/jcorbin/xpl/xpl"
)

// demoStack is a small host-owned integer stack exercised by the demo
// registry below. It lives entirely outside the xpl core: per spec, XPL
// itself provides no numeric stack beyond the single boolean accumulator,
// so any arithmetic a script needs comes from host callbacks like these.
type demoStack struct {
	out    io.Writer
	values []int
}

func (s *demoStack) push(v int)  { s.values = append(s.values, v) }
func (s *demoStack) pop() int {
	if len(s.values) == 0 {
		return 0
	}
	i := len(s.values) - 1
	v := s.values[i]
	s.values = s.values[:i]
	return v
}

func demoRegistry() *xpl.Registry {
	return xpl.NewRegistry(map[string]xpl.Callback{
		"push": func(ctx *xpl.Context) xpl.Status {
			n, status := ctx.PopInt()
			if status != xpl.StatusOK {
				return status
			}
			demo(ctx).push(n)
			return xpl.StatusOK
		},
		"add": func(ctx *xpl.Context) xpl.Status {
			d := demo(ctx)
			b, a := d.pop(), d.pop()
			d.push(a + b)
			return xpl.StatusOK
		},
		"sub": func(ctx *xpl.Context) xpl.Status {
			d := demo(ctx)
			b, a := d.pop(), d.pop()
			d.push(a - b)
			return xpl.StatusOK
		},
		"mul": func(ctx *xpl.Context) xpl.Status {
			d := demo(ctx)
			b, a := d.pop(), d.pop()
			d.push(a * b)
			return xpl.StatusOK
		},
		"print": func(ctx *xpl.Context) xpl.Status {
			d := demo(ctx)
			fmt.Fprintln(d.out, d.pop())
			return xpl.StatusOK
		},
		"say": func(ctx *xpl.Context) xpl.Status {
			s, status := ctx.PopString(4096)
			if status != xpl.StatusOK {
				return status
			}
			runeio.WriteANSIString(demo(ctx).out, s)
			runeio.WriteANSIRune(demo(ctx).out, '\n')
			return xpl.StatusOK
		},
		"gt0": func(ctx *xpl.Context) xpl.Status {
			ctx.PushBool(demo(ctx).pop() > 0)
			return xpl.StatusOK
		},
		"eq0": func(ctx *xpl.Context) xpl.Status {
			ctx.PushBool(demo(ctx).pop() == 0)
			return xpl.StatusOK
		},
	})
}

func demo(ctx *xpl.Context) *demoStack {
	d, ok := ctx.Userdata.(*demoStack)
	if !ok {
		panic("xplrun: context missing demoStack userdata")
	}
	return d
}
