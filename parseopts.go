package scicalc

// Option is an option for creating an Evaluator.
type Option interface {
	apply(*Evaluator)
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt map[string]Func
	powopt   PowFunc
	skipopt  struct{}
)

// WithFunc sets a function for parsing and evaluation. To disable a function,
// pass nil for fn.
func WithFunc(name string, fn Func) Option {
	return &funcopt{name, fn}
}

func (o *funcopt) apply(ev *Evaluator) {
	if o.fn == nil {
		delete(ev.funcs, o.name)
		return
	}
	ev.funcs[o.name] = o.fn
}

// WithFuncs sets a group of functions. To disable any function, set it to nil.
func WithFuncs(fns map[string]Func) Option {
	return funcsopt(fns)
}

func (o funcsopt) apply(ev *Evaluator) {
	for k, v := range o {
		(&funcopt{k, v}).apply(ev)
	}
}

// DisableDefaultFuncs disables all default functions. Their names will be
// parsed as unknown words instead.
func DisableDefaultFuncs() Option {
	m := make(funcsopt, len(globalfuncs))
	for k := range globalfuncs {
		m[k] = nil
	}
	return m
}

// Power sets the function computing the ^ operator. The default is LegacyPow.
func Power(fn PowFunc) Option {
	return powopt(fn)
}

func (o powopt) apply(ev *Evaluator) {
	if o == nil {
		ev.pow = LegacyPow
		return
	}
	ev.pow = PowFunc(o)
}

// SkipInvalid tells the lexer to drop characters that begin no token instead
// of failing.
func SkipInvalid() Option {
	return skipopt{}
}

func (skipopt) apply(ev *Evaluator) {
	ev.skip = true
}
