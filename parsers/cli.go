// Package parsers provides registry implementations that resolve declared
// option groups against real input sources.
package parsers

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/optmodel/optmodel/options"
)

// CLIParser resolves option groups against a command line. Tokenization is
// delegated to pflag; each registered group is parsed over the full token
// stream with unknown flags tolerated, so groups can be registered in any
// order and flags of later groups do not fail earlier parses.
type CLIParser struct {
	args     []string
	groups   []*options.Group
	known    map[string]options.Option
	supplied map[string]struct{}
}

var _ options.Interface = (*CLIParser)(nil)

// NewCLIParser returns a parser over the given tokens, usually os.Args[1:].
// The tokens are copied; Insert and Replace mutate only the copy.
func NewCLIParser(args []string) *CLIParser {
	return &CLIParser{
		args:     slices.Clone(args),
		known:    make(map[string]options.Option),
		supplied: make(map[string]struct{}),
	}
}

// AddAndParse registers the group's options and resolves their values from
// the command line. Explicitly supplied flags are recorded and assigned
// through the initial-parse path, so located options propagate to their bound
// variables; unsupplied options fall back to their declared default when one
// exists and otherwise stay without a value. Declaring a name a second time
// with the same kind reuses the first declaration's handle; a second
// declaration with a different kind is an error.
func (c *CLIParser) AddAndParse(group *options.Group) error {
	if group == nil || group.Name == "" {
		return errors.New("every option group must have a name")
	}

	for i, opt := range group.Options {
		canonical, err := c.register(opt)
		if err != nil {
			return err
		}
		group.Options[i] = canonical
	}
	c.groups = append(c.groups, group)

	fs, err := c.newFlagSet(group.Name, group.Options)
	if err != nil {
		return err
	}
	if err := fs.Parse(c.args); err != nil {
		return errors.Wrapf(err, "parsing option group %q", group.Name)
	}
	return c.harvest(fs, group.Options)
}

// AddParseAndCheckNecessary registers the group like AddAndParse and reports
// whether the group is enabled: it declares at least one Necessary option and
// every Necessary option was supplied.
func (c *CLIParser) AddParseAndCheckNecessary(group *options.Group) (bool, error) {
	if err := c.AddAndParse(group); err != nil {
		return false, err
	}
	if !group.ContainsNecessary() {
		return false, nil
	}
	for _, opt := range group.Options {
		base := opt.Base()
		if base.Necessary && !c.WasSupplied(base.Name) {
			return false, nil
		}
	}
	return true, nil
}

// register records opt under its name, returning the canonical handle for
// that name.
func (c *CLIParser) register(opt options.Option) (options.Option, error) {
	base := opt.Base()
	if base.Name == "" {
		return nil, errors.New("every option must have a name")
	}

	existing, ok := c.known[base.Name]
	if !ok {
		c.known[base.Name] = opt
		return opt, nil
	}
	if existing.Base().Kind != base.Kind {
		return nil, errors.Errorf("option --%s declared twice: first as %s, now as %s",
			base.Name, existing.Base().Kind, base.Kind)
	}
	return existing, nil
}

// newFlagSet builds a pflag set holding one flag per option.
func (c *CLIParser) newFlagSet(name string, opts []options.Option) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.ParseErrorsAllowlist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	binder := &flagBinder{fs: fs}
	shorts := make(map[string]string)
	for _, opt := range opts {
		base := opt.Base()
		if fs.Lookup(base.Name) != nil {
			continue // the same handle was added to the group twice
		}
		if len(base.ShortName) > 1 {
			return nil, errors.Errorf("option --%s: short name %q must be a single character", base.Name, base.ShortName)
		}
		if base.ShortName != "" {
			if owner, taken := shorts[base.ShortName]; taken {
				return nil, errors.Errorf("short name -%s claimed by both --%s and --%s",
					base.ShortName, owner, base.Name)
			}
			shorts[base.ShortName] = base.Name
		}
		opt.Accept(binder)
		if base.HiddenFromHelp {
			_ = fs.MarkHidden(base.Name)
		}
	}

	// pflag maps an unregistered --help or -h to ErrHelp before the
	// unknown-flag allowlist applies; a hidden stub keeps parses of groups
	// that declare no help option alive.
	if fs.Lookup("help") == nil {
		short := "h"
		if _, taken := shorts["h"]; taken {
			short = ""
		}
		fs.BoolP("help", short, false, "")
		_ = fs.MarkHidden("help")
	}
	return fs, nil
}

// harvest copies parsed values back into the typed options. Assignments go
// through the initial-parse path so located write-backs fire, for supplied
// values and applied defaults alike.
func (c *CLIParser) harvest(fs *pflag.FlagSet, opts []options.Option) error {
	h := &valueHarvester{fs: fs}
	for _, opt := range opts {
		if fs.Changed(opt.Base().Name) {
			c.supplied[opt.Base().Name] = struct{}{}
		}
		opt.Accept(h)
		if h.err != nil {
			return h.err
		}
	}
	return nil
}

// WasSupplied reports whether the named option was explicitly given on the
// command line. Options already registered answer from parse results; for
// names not yet registered the raw tokens are scanned, so callers can probe
// for flags of groups that have not been declared.
func (c *CLIParser) WasSupplied(name string) bool {
	if _, ok := c.supplied[name]; ok {
		return true
	}
	return tokenPresent(c.args, name)
}

// SuppliedOptions returns the sorted names of every registered option that
// was explicitly supplied.
func (c *CLIParser) SuppliedOptions() []string {
	return slices.Sorted(maps.Keys(c.supplied))
}

// CheckUnregistered scans the command line for flag-shaped tokens no
// registered group declared. Each offender is reported through log; the
// returned error summarises all of them, nil when the command line is clean.
func (c *CLIParser) CheckUnregistered(log options.Logger) error {
	var unknown []string
	seen := make(map[string]struct{})
	for _, spelling := range c.unknownSpellings() {
		if _, ok := seen[spelling]; ok {
			continue
		}
		seen[spelling] = struct{}{}
		unknown = append(unknown, spelling)
	}
	if len(unknown) == 0 {
		return nil
	}

	for _, spelling := range unknown {
		if log != nil {
			log.Warnf("unrecognised option '%s'", spelling)
		}
	}
	return errors.Errorf("unrecognised options: %s", strings.Join(unknown, ", "))
}

// Insert appends key, and value when non-empty, to the token stream as a
// pre-parse override. Groups registered afterwards see the injected tokens;
// groups already parsed are not revisited.
func (c *CLIParser) Insert(key, value string) {
	c.args = append(c.args, "--"+key)
	if value != "" {
		c.args = append(c.args, value)
	}
}

// Replace rewrites the value of an option already present in the token
// stream. The option must have been supplied, or Inserted, with a value;
// a following option token does not count as one.
func (c *CLIParser) Replace(key, value string) error {
	long := "--" + key
	for i, tok := range c.args {
		if tok == "--" {
			break
		}
		if tok == long {
			if i+1 >= len(c.args) || strings.HasPrefix(c.args[i+1], "--") {
				return errors.Errorf("option --%s has no value to replace", key)
			}
			c.args[i+1] = value
			return nil
		}
		if strings.HasPrefix(tok, long+"=") {
			c.args[i] = long + "=" + value
			return nil
		}
	}
	return errors.Errorf("option --%s was not supplied, cannot replace its value", key)
}

// PositionalTokens returns the command-line tokens not claimed by any
// registered option, in their original order.
func (c *CLIParser) PositionalTokens() []string {
	fs, err := c.newFlagSet("positional", c.Options())
	if err != nil {
		return nil
	}
	if err := fs.Parse(c.args); err != nil {
		return nil
	}
	return fs.Args()
}

// Options returns every registered option handle, sorted by name.
func (c *CLIParser) Options() []options.Option {
	out := make([]options.Option, 0, len(c.known))
	for _, name := range slices.Sorted(maps.Keys(c.known)) {
		out = append(out, c.known[name])
	}
	return out
}

// Option returns the registered handle with the given name.
func (c *CLIParser) Option(name string) (options.Option, bool) {
	opt, ok := c.known[name]
	return opt, ok
}

// Groups returns the registered groups in registration order.
func (c *CLIParser) Groups() []*options.Group {
	return slices.Clone(c.groups)
}

// shortOption returns the registered option claiming the given short name,
// or nil.
func (c *CLIParser) shortOption(short string) options.Option {
	for _, opt := range c.known {
		if opt.Base().ShortName == short {
			return opt
		}
	}
	return nil
}

// unknownSpellings lists the flag-shaped tokens no registered option claims,
// as originally written minus any =value suffix, stopping at the bare --
// terminator. The walk consumes values the way pflag does, so the argument
// of a registered option is never mistaken for a flag: an option that takes
// a value swallows the following token unless the value is attached with =
// or, for short flags, appended to the token itself.
func (c *CLIParser) unknownSpellings() []string {
	var unknown []string
	for i := 0; i < len(c.args); i++ {
		tok := c.args[i]
		if tok == "--" {
			break
		}
		if !strings.HasPrefix(tok, "-") || tok == "-" {
			continue
		}

		if strings.HasPrefix(tok, "--") {
			name, attached := splitFlagToken(tok[2:])
			if name == "" || strings.TrimLeft(name, "-") == "" {
				continue
			}
			opt, ok := c.known[name]
			if !ok {
				unknown = append(unknown, "--"+name)
				continue
			}
			if !attached && takesValue(opt) {
				i++
			}
			continue
		}

		// Short tokens hold one or more single-character flags; the first
		// one that takes a value claims the rest of the token, or the next
		// token when nothing is attached.
		body, attached := splitFlagToken(tok[1:])
		claimed := true
		for j := 0; j < len(body); j++ {
			opt := c.shortOption(string(body[j]))
			if opt == nil {
				claimed = false
				break
			}
			if !takesValue(opt) {
				continue
			}
			if j == len(body)-1 && !attached {
				i++
			}
			break
		}
		if !claimed {
			spelling, _ := splitFlagToken(tok)
			unknown = append(unknown, spelling)
		}
	}
	return unknown
}

// takesValue reports whether the option consumes a value token on the
// command line; bool flags are set by their presence alone.
func takesValue(opt options.Option) bool {
	return opt.Base().Kind != options.KindBool
}

// splitFlagToken cuts a token at the first =, reporting whether a value was
// attached.
func splitFlagToken(tok string) (string, bool) {
	if eq := strings.IndexByte(tok, '='); eq >= 0 {
		return tok[:eq], true
	}
	return tok, false
}

// tokenPresent reports whether the tokens mention name as a flag, in long
// form or, for single-character names, in short form. Scanning stops at the
// bare -- terminator.
func tokenPresent(args []string, name string) bool {
	if name == "" {
		return false
	}
	long := "--" + name
	short := "-" + name
	for _, tok := range args {
		if tok == "--" {
			return false
		}
		if tok == long || strings.HasPrefix(tok, long+"=") {
			return true
		}
		if len(name) == 1 && (tok == short || strings.HasPrefix(tok, short+"=")) {
			return true
		}
	}
	return false
}
