/*
Package xpl implements a minimal, embeddable command-oriented mini-language
interpreter. A host registers named callbacks; a loaded script is a flat
sequence of whitespace-separated tokens naming those callbacks, interleaved
with literal arguments the callbacks pull out of the source stream
themselves.

A typical embedding looks like:

	reg := xpl.NewRegistry(map[string]xpl.Callback{
		"print": func(ctx *xpl.Context) xpl.Status {
			s, status := ctx.PopString(256)
			if status != xpl.StatusOK {
				return status
			}
			fmt.Println(s)
			return xpl.StatusOK
		},
	})
	ctx := xpl.Open(reg)
	ctx.Load(`print "hello"`)
	if status := ctx.Run(); status != xpl.StatusOK {
		log.Fatal(status)
	}

The registry always carries eight built-in keywords in addition to the
host's own: if, then, elseif, else, endif, or, and, yield, implementing a
small structured-if evaluator over a single boolean accumulator and a
suspend-on-yield primitive for cooperative resumption across Run calls.
*/
package xpl
