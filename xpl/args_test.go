package xpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/xpl/xpl"
)

func openWithScript(t *testing.T, reg *xpl.Registry, script string) *xpl.Context {
	t.Helper()
	ctx := xpl.Open(reg)
	ctx.Load(script)
	return ctx
}

func TestPopString_bareword(t *testing.T) {
	reg := xpl.NewRegistry(nil)
	ctx := openWithScript(t, reg, `hello world`)
	s, status := ctx.PopString(64)
	assert.Equal(t, xpl.StatusOK, status)
	assert.Equal(t, "hello", s)
}

func TestPopString_quoted(t *testing.T) {
	reg := xpl.NewRegistry(nil)
	ctx := openWithScript(t, reg, `"hello world" rest`)
	s, status := ctx.PopString(64)
	assert.Equal(t, xpl.StatusOK, status)
	assert.Equal(t, "hello world", s)
}

func TestPopString_quoted_unterminated(t *testing.T) {
	reg := xpl.NewRegistry(nil)
	ctx := openWithScript(t, reg, `"hello world`)
	s, status := ctx.PopString(64)
	assert.Equal(t, xpl.StatusErr, status)
	assert.Equal(t, "", s)
	assert.True(t, ctx.AtEnd())
}

func TestPopString_overflowDoesNotMoveCursor(t *testing.T) {
	reg := xpl.NewRegistry(nil)
	ctx := openWithScript(t, reg, `toolongliteral rest`)
	before := ctx.Cursor()
	_, status := ctx.PopString(4)
	assert.Equal(t, xpl.StatusNoEnoughBuffer, status)
	assert.Equal(t, before, ctx.Cursor())
}

func TestPopInt_parsesBases(t *testing.T) {
	reg := xpl.NewRegistry(nil)
	for _, tc := range []struct {
		script string
		want   int
	}{
		{"42", 42},
		{"0x10", 16},
		{"010", 8},
	} {
		ctx := openWithScript(t, reg, tc.script)
		n, status := ctx.PopInt()
		assert.Equal(t, xpl.StatusOK, status)
		assert.Equal(t, tc.want, n)
	}
}

func TestPopInt_typeError(t *testing.T) {
	reg := xpl.NewRegistry(nil)
	ctx := openWithScript(t, reg, `notanumber`)
	_, status := ctx.PopInt()
	assert.Equal(t, xpl.StatusParamTypeError, status)
	assert.True(t, ctx.AtEnd(), "cursor should still advance past the popped literal")
}

func TestPopFloat_parses(t *testing.T) {
	reg := xpl.NewRegistry(nil)
	ctx := openWithScript(t, reg, `3.14`)
	f, status := ctx.PopFloat()
	assert.Equal(t, xpl.StatusOK, status)
	assert.InDelta(t, 3.14, f, 0.0001)
}

func TestHasParam(t *testing.T) {
	reg, _ := recordingRegistry("foo")
	t.Run("literal", func(t *testing.T) {
		ctx := openWithScript(t, reg, `123`)
		assert.Equal(t, xpl.StatusOK, ctx.HasParam())
	})
	t.Run("comma", func(t *testing.T) {
		ctx := openWithScript(t, reg, `, foo`)
		assert.Equal(t, xpl.StatusNoParam, ctx.HasParam())
	})
	t.Run("keyword", func(t *testing.T) {
		ctx := openWithScript(t, reg, `foo`)
		assert.Equal(t, xpl.StatusNoParam, ctx.HasParam())
	})
	t.Run("end", func(t *testing.T) {
		ctx := openWithScript(t, reg, ``)
		assert.Equal(t, xpl.StatusNoParam, ctx.HasParam())
	})
}

func TestPushBool_composeModes(t *testing.T) {
	reg := xpl.NewRegistry(nil)
	ctx := openWithScript(t, reg, ``)

	ctx.PushBool(true)
	assert.Equal(t, 1, ctx.BoolValue())
	assert.Equal(t, xpl.ComposeNil, ctx.BoolComposing())
}

func TestPushBool_orAndAccumulate(t *testing.T) {
	var final int
	reg := xpl.NewRegistry(map[string]xpl.Callback{
		"t": func(ctx *xpl.Context) xpl.Status { ctx.PushBool(true); return xpl.StatusOK },
		"f": func(ctx *xpl.Context) xpl.Status { ctx.PushBool(false); return xpl.StatusOK },
		"check": func(ctx *xpl.Context) xpl.Status {
			final = ctx.BoolValue()
			return xpl.StatusOK
		},
	})
	// f or t and f then check endif -> ((0|1)&0) == 0, so check only runs
	// via the outer script after endif, not inside the untaken branch.
	ctx := openWithScript(t, reg, `if f or t and f then check endif check`)
	assert.Equal(t, xpl.StatusOK, ctx.Run())
	assert.Equal(t, 0, final)
}

func TestSkipComment(t *testing.T) {
	reg := xpl.NewRegistry(nil)
	ctx := openWithScript(t, reg, `'a comment' rest`)
	assert.Equal(t, xpl.StatusOK, ctx.SkipComment())

	ctx2 := openWithScript(t, reg, `not a comment`)
	assert.Equal(t, xpl.StatusNoComment, ctx2.SkipComment())
}
