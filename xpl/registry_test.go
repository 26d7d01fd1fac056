package xpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/xpl/xpl"
)

func TestNewRegistry_includesBuiltins(t *testing.T) {
	reg, calls := recordingRegistry("noop")
	_ = calls
	ctx := xpl.Open(reg)
	ctx.Load("if noop then endif")
	assert.Equal(t, xpl.StatusOK, ctx.Run())
}

func TestNewRegistry_duplicateNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		xpl.NewRegistry(map[string]xpl.Callback{
			"then": func(ctx *xpl.Context) xpl.Status { return xpl.StatusOK },
		})
	})
}

func TestNewRegistry_emptyNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		xpl.NewRegistry(map[string]xpl.Callback{
			"": func(ctx *xpl.Context) xpl.Status { return xpl.StatusOK },
		})
	})
}

func TestOpen_nilRegistryPanics(t *testing.T) {
	assert.Panics(t, func() {
		xpl.Open(nil)
	})
}
