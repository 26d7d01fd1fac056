package xpl

// PeekFunc classifies the next token without invoking it: it skips
// meaningless bytes, and then either consumes a comma separator (returning
// StatusOK with no entry) or binary-searches the registry using the cursor
// as key, returning StatusErr if the token does not resolve to a registered
// name.
func (ctx *Context) PeekFunc() (Status, *entry) {
	ctx.requireLoaded()
	pos := skipMeaningless(ctx.text, ctx.cursor)
	ctx.cursor = pos
	if pos < len(ctx.text) && ctx.text[pos] == comma {
		ctx.cursor = pos + 1
		return StatusOK, nil
	}
	e, _, ok := ctx.registry.lookup(ctx.text, pos)
	if !ok {
		return StatusErr, nil
	}
	return StatusOK, &e
}

// Step performs one dispatch: it peeks the next token, and if it names a
// registered callback, advances the cursor past the name, skips meaningless
// bytes, and invokes the callback. A comma with no following callback is a
// no-op step that returns OK.
func (ctx *Context) Step() Status {
	ctx.requireLoaded()
	status, e := ctx.PeekFunc()
	if status != StatusOK {
		return status
	}
	if e == nil {
		return StatusOK
	}
	ctx.cursor += len(e.name)
	ctx.cursor = skipMeaningless(ctx.text, ctx.cursor)
	ctx.logf(".", "call %s", e.name)
	return e.fn(ctx)
}

// Run drives Step to completion, suspension, or error: it repeats Step
// while the cursor is short of end-of-input and the last step returned OK.
// Trailing blanks and comments count as end-of-input. Suspend halts Run but
// leaves the cursor positioned so a later Run resumes from the token
// following yield.
func (ctx *Context) Run() Status {
	ctx.requireLoaded()
	for ctx.cursor < len(ctx.text) {
		if skipMeaningless(ctx.text, ctx.cursor) >= len(ctx.text) {
			ctx.cursor = len(ctx.text)
			break
		}
		if ctx.stepLimit != 0 {
			ctx.steps++
			if ctx.steps > ctx.stepLimit {
				return StatusErr
			}
		}
		status := ctx.Step()
		if status != StatusOK {
			return status
		}
	}
	return StatusOK
}
