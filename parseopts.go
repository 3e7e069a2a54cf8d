package rpncalc

// Option is an option for scanning and evaluating expressions.
type Option interface {
	option(*config)
}

// config holds the settings selected by options.
type config struct {
	// strict indicates that unrecognized runes are errors rather than
	// being skipped.
	strict bool
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(&c)
	}
	return c
}

type strictopt bool

func (o strictopt) option(c *config) {
	c.strict = bool(o)
}

// Strict makes the tokenizer reject any rune that is not a digit, a dot, an
// operator, or whitespace, with a *CharError.
func Strict() Option {
	return strictopt(true)
}

// Lenient makes the tokenizer skip unrecognized runes. This is the default.
// It is useful to override a Strict earlier in a list of options.
func Lenient() Option {
	return strictopt(false)
}
