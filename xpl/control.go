package xpl

// evalThen implements the conditional-block control-flow machinery: it is
// the callback registered for "then", and it is the only one of the five
// branch keywords that does real work — if/elseif/else/endif are no-ops
// when dispatched normally, existing only to be recognized as tokens here
// and by the skip scanners below.
//
// Unlike the original C source, whose skip loops stop at the first endif
// they see, this port tracks if/endif nesting while skipping so a
// conditional nested inside a taken or untaken branch is treated as a
// unit rather than truncating the outer block early.
func (ctx *Context) evalThen() Status {
	taken := ctx.boolValue != 0
	ctx.boolValue = 0
	ctx.boolComposing = ComposeNil

	if taken {
		if status := ctx.execBranch(); status != StatusOK {
			ctx.branchClosed = false
			return status
		}
		status := ctx.skipToEndif()
		ctx.branchClosed = status == StatusOK
		return status
	}
	ctx.branchClosed = false
	return ctx.skipToBranch()
}

// execBranch runs the taken branch's body via ordinary dispatch — the same
// mechanism Step uses — until it reaches an elseif/else/endif belonging to
// this same then, at which point it stops without consuming that token.
//
// A nested "if" inside the body is executed for real (its "then" recurses
// into evalThen), but that recursion does not always consume its own
// matching endif: if the nested predicate is false, the nested "then"
// leaves its elseif/else/endif unconsumed for this loop to dispatch
// normally, exactly as the top-level Run loop would. So this loop must
// track nesting depth itself (incrementing on a dispatched "if", and
// decrementing either when it dispatches a nested endif directly or when a
// nested "then" call reports, via ctx.branchClosed, that it already
// consumed one internally) in order to tell its own terminating
// elseif/else/endif apart from one belonging to a nested conditional still
// being resolved.
func (ctx *Context) execBranch() Status {
	depth := 0
	for {
		status, e := ctx.PeekFunc()
		if status != StatusOK {
			return status
		}
		if e == nil {
			continue // comma already consumed by PeekFunc
		}
		if depth == 0 && (e.kind == kindElseif || e.kind == kindElse || e.kind == kindEndif) {
			return StatusOK
		}
		if e.kind == kindIf {
			depth++
		}
		ctx.cursor += len(e.name)
		ctx.cursor = skipMeaningless(ctx.text, ctx.cursor)
		ctx.logf(".", "call %s", e.name)
		if status := e.fn(ctx); status != StatusOK {
			return status
		}
		switch {
		case e.kind == kindEndif:
			depth--
		case e.kind == kindThen && depth > 0 && ctx.branchClosed:
			depth--
		}
	}
}

// skipToEndif discards the remaining elseif/else bodies of a conditional
// whose branch has already executed, stopping once it consumes the
// matching endif at depth 0.
func (ctx *Context) skipToEndif() Status {
	depth := 0
	for {
		kind, isKeyword, _, end, status := ctx.peekSkipToken()
		if status != StatusOK {
			return status
		}
		ctx.cursor = end
		if !isKeyword {
			continue
		}
		switch kind {
		case kindIf:
			depth++
		case kindEndif:
			if depth == 0 {
				return StatusOK
			}
			depth--
		}
	}
}

// skipToBranch discards an untaken predicate's body without invoking any
// callback in it, stopping just before the elseif/else/endif that follows
// at depth 0 so the outer dispatch loop invokes that keyword next.
func (ctx *Context) skipToBranch() Status {
	depth := 0
	for {
		kind, isKeyword, start, end, status := ctx.peekSkipToken()
		if status != StatusOK {
			return status
		}
		if isKeyword && depth == 0 && (kind == kindElseif || kind == kindElse || kind == kindEndif) {
			ctx.cursor = start
			return StatusOK
		}
		if isKeyword {
			switch kind {
			case kindIf:
				depth++
			case kindEndif:
				depth--
			}
		}
		ctx.cursor = end
	}
}

// peekSkipToken classifies the next span for the skip scanners above
// without mutating the cursor: a comma, a quoted string, a registered
// name (returned with its builtinKind), or a bareword literal. Skip mode
// must be able to step over plain literal arguments (as in "test1 3.14")
// as well as keywords, since those arguments belong to callbacks that are
// never invoked while skipping; limiting the scan to registry lookups
// alone (as the original interpreter effectively does) can stall on a
// bare literal that matches no registered name.
func (ctx *Context) peekSkipToken() (kind builtinKind, isKeyword bool, start, end int, status Status) {
	pos := skipMeaningless(ctx.text, ctx.cursor)
	if pos >= len(ctx.text) {
		return 0, false, pos, pos, StatusErr
	}
	if ctx.text[pos] == comma {
		return 0, false, pos, pos + 1, StatusOK
	}
	if ctx.text[pos] == dquote {
		i := pos + 1
		for i < len(ctx.text) && ctx.text[i] != dquote {
			i++
		}
		if i < len(ctx.text) {
			i++
		}
		return 0, false, pos, i, StatusOK
	}
	if e, length, ok := ctx.registry.lookup(ctx.text, pos); ok {
		return e.kind, true, pos, pos + length, StatusOK
	}
	i := pos
	for i < len(ctx.text) && !isSeparator(ctx.text[i]) {
		i++
	}
	return 0, false, pos, i, StatusOK
}
