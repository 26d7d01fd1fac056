package xpl

import "strconv"

// popStringBufCap mirrors the 32-byte local buffer the original interpreter
// uses inside pop_int/pop_float before handing the text to strtol/strtod.
const popStringBufCap = 32

// HasParam tests whether the cursor sits on a literal argument: it skips
// meaningless bytes and reports NoParam if the next byte is a comma or the
// next token resolves to a registered callback name, since both terminate
// an argument list. It does not consume the probed token.
func (ctx *Context) HasParam() Status {
	ctx.requireLoaded()
	pos := skipMeaningless(ctx.text, ctx.cursor)
	ctx.cursor = pos
	if pos >= len(ctx.text) {
		return StatusNoParam
	}
	if ctx.text[pos] == comma {
		return StatusNoParam
	}
	if _, _, ok := ctx.registry.lookup(ctx.text, pos); ok {
		return StatusNoParam
	}
	return StatusOK
}

// PopString consumes the next literal: a double-quoted span (without escape
// processing; quotes cannot appear inside) or, otherwise, a bareword run up
// to the next separator byte. maxLen bounds the result length the way the
// original's destination buffer capacity does; exceeding it yields
// NoEnoughBuffer without moving the cursor. The scan never reads past the
// end of the loaded text: an unterminated quoted string yields Err, with the
// cursor left at end-of-input.
func (ctx *Context) PopString(maxLen int) (string, Status) {
	ctx.requireLoaded()
	start := ctx.cursor
	if start < len(ctx.text) && ctx.text[start] == dquote {
		i := start + 1
		for i < len(ctx.text) && ctx.text[i] != dquote {
			i++
		}
		if i >= len(ctx.text) {
			ctx.cursor = i
			return "", StatusErr
		}
		lit := ctx.text[start+1 : i]
		if len(lit) > maxLen {
			return "", StatusNoEnoughBuffer
		}
		i++ // closing quote
		ctx.cursor = i
		return lit, StatusOK
	}

	i := start
	for i < len(ctx.text) && !isSeparator(ctx.text[i]) {
		i++
	}
	lit := ctx.text[start:i]
	if len(lit) > maxLen {
		return "", StatusNoEnoughBuffer
	}
	ctx.cursor = i
	return lit, StatusOK
}

// PopInt delegates to PopString with a fixed 32-byte capacity, then parses
// the literal as a signed integer with base-0 prefix detection (decimal,
// 0x hex, leading-0 octal). Any trailing content after a successful parse
// is a ParamTypeError; the cursor has already advanced past the literal in
// that case, since the literal itself was popped successfully.
func (ctx *Context) PopInt() (int, Status) {
	lit, status := ctx.PopString(popStringBufCap)
	if status != StatusOK {
		return 0, status
	}
	n, err := strconv.ParseInt(lit, 0, 64)
	if err != nil {
		return 0, StatusParamTypeError
	}
	return int(n), StatusOK
}

// PopFloat is PopInt's double/float32 counterpart.
func (ctx *Context) PopFloat() (float32, Status) {
	lit, status := ctx.PopString(popStringBufCap)
	if status != StatusOK {
		return 0, status
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, StatusParamTypeError
	}
	return float32(f), StatusOK
}

// PushBool normalizes b to 0/1 and combines it with the accumulator per the
// current composing mode: ComposeNil overwrites, ComposeOr/ComposeAnd
// bitwise-combine. The composing mode itself is left unchanged.
func (ctx *Context) PushBool(b bool) {
	ctx.requireLoaded()
	v := 0
	if b {
		v = 1
	}
	switch ctx.boolComposing {
	case ComposeNil:
		ctx.boolValue = v
	case ComposeOr:
		ctx.boolValue |= v
	case ComposeAnd:
		ctx.boolValue &= v
	default:
		panic("xpl: unknown boolean composing mode")
	}
}

// SkipComment consumes one comment span at the cursor, reporting NoComment
// if the cursor is not on an opening single quote.
func (ctx *Context) SkipComment() Status {
	ctx.requireLoaded()
	pos, ok := skipComment(ctx.text, ctx.cursor)
	if !ok {
		return StatusNoComment
	}
	ctx.cursor = pos
	return StatusOK
}
