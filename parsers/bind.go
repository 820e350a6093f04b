package parsers

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/optmodel/optmodel/options"
)

// flagBinder registers each typed option with a pflag set, declared defaults
// included.
type flagBinder struct {
	fs *pflag.FlagSet
}

var _ options.Visitor = (*flagBinder)(nil)

func (b *flagBinder) VisitUint32(o *options.TypedOption[uint32]) {
	b.fs.Uint32P(o.Name, o.ShortName, defaultOr(o, 0), o.Help)
}

func (b *flagBinder) VisitUint64(o *options.TypedOption[uint64]) {
	b.fs.Uint64P(o.Name, o.ShortName, defaultOr(o, 0), o.Help)
}

func (b *flagBinder) VisitInt32(o *options.TypedOption[int32]) {
	b.fs.Int32P(o.Name, o.ShortName, defaultOr(o, 0), o.Help)
}

func (b *flagBinder) VisitInt64(o *options.TypedOption[int64]) {
	b.fs.Int64P(o.Name, o.ShortName, defaultOr(o, 0), o.Help)
}

func (b *flagBinder) VisitFloat64(o *options.TypedOption[float64]) {
	b.fs.Float64P(o.Name, o.ShortName, defaultOr(o, 0), o.Help)
}

func (b *flagBinder) VisitBool(o *options.TypedOption[bool]) {
	b.fs.BoolP(o.Name, o.ShortName, defaultOr(o, false), o.Help)
}

func (b *flagBinder) VisitString(o *options.TypedOption[string]) {
	b.fs.StringP(o.Name, o.ShortName, defaultOr(o, ""), o.Help)
}

func (b *flagBinder) VisitStringSlice(o *options.TypedOption[[]string]) {
	b.fs.StringSliceP(o.Name, o.ShortName, defaultOr(o, nil), o.Help)
}

// defaultOr returns the option's declared default, or fallback when none is
// configured.
func defaultOr[T options.ValueType](o *options.TypedOption[T], fallback T) T {
	if v, err := o.DefaultValue(); err == nil {
		return v
	}
	return fallback
}

// valueHarvester copies parsed flag values into the typed options through
// the initial-parse path. The first failure stops further harvesting.
type valueHarvester struct {
	fs  *pflag.FlagSet
	err error
}

var _ options.Visitor = (*valueHarvester)(nil)

func (h *valueHarvester) VisitUint32(o *options.TypedOption[uint32]) {
	harvest(h, o, h.fs.GetUint32)
}

func (h *valueHarvester) VisitUint64(o *options.TypedOption[uint64]) {
	harvest(h, o, h.fs.GetUint64)
}

func (h *valueHarvester) VisitInt32(o *options.TypedOption[int32]) {
	harvest(h, o, h.fs.GetInt32)
}

func (h *valueHarvester) VisitInt64(o *options.TypedOption[int64]) {
	harvest(h, o, h.fs.GetInt64)
}

func (h *valueHarvester) VisitFloat64(o *options.TypedOption[float64]) {
	harvest(h, o, h.fs.GetFloat64)
}

func (h *valueHarvester) VisitBool(o *options.TypedOption[bool]) {
	harvest(h, o, h.fs.GetBool)
}

func (h *valueHarvester) VisitString(o *options.TypedOption[string]) {
	harvest(h, o, h.fs.GetString)
}

func (h *valueHarvester) VisitStringSlice(o *options.TypedOption[[]string]) {
	harvest(h, o, h.fs.GetStringSlice)
}

// harvest assigns the parsed value when the flag was supplied, and the
// declared default otherwise. Options without a value and without a default
// are left untouched.
func harvest[T options.ValueType](h *valueHarvester, o *options.TypedOption[T], get func(string) (T, error)) {
	if h.err != nil {
		return
	}
	if h.fs.Changed(o.Name) {
		v, err := get(o.Name)
		if err != nil {
			h.err = errors.Wrapf(err, "reading option --%s", o.Name)
			return
		}
		o.SetValue(v, true)
		return
	}
	if def, err := o.DefaultValue(); err == nil {
		o.SetValue(def, true)
	}
}
