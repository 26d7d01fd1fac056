package xpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/xpl/xpl"
)

// xplTestCase mirrors the teacher's vmTestCase: a named script run against
// a registry, with assertions made against the resulting context and any
// error.
type xplTestCase struct {
	name     string
	registry *xpl.Registry
	script   string
	opts     []xpl.Option
	run      func(t *testing.T, ctx *xpl.Context, status xpl.Status)
}

type xplTestCases []xplTestCase

func (tcs xplTestCases) run(t *testing.T) {
	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, tc.run1)
	}
}

func (tc xplTestCase) run1(t *testing.T) {
	reg := tc.registry
	require.NotNil(t, reg, "test case must supply a registry")
	ctx := xpl.Open(reg, tc.opts...)
	ctx.Load(tc.script)
	status := ctx.Run()
	if tc.run != nil {
		tc.run(t, ctx, status)
	} else {
		assert.Equal(t, xpl.StatusOK, status)
	}
}

// recordingRegistry builds a registry of no-arg callbacks that each append
// their own name to a shared call log, for tests that only care about
// which callbacks fired and in what order.
func recordingRegistry(names ...string) (*xpl.Registry, *[]string) {
	var calls []string
	callbacks := make(map[string]xpl.Callback, len(names))
	for _, name := range names {
		name := name
		callbacks[name] = func(ctx *xpl.Context) xpl.Status {
			calls = append(calls, name)
			return xpl.StatusOK
		}
	}
	return xpl.NewRegistry(callbacks), &calls
}
