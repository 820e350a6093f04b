package options

// Interface is the contract between declared option groups and whatever
// source supplies their values. A command-line registry resolves groups
// against real tokens; a NameExtractor implements the same contract while
// consuming nothing, so code driving a registry also works for
// documentation passes.
type Interface interface {
	// AddAndParse registers the group's declarations and resolves their
	// values from the underlying source.
	AddAndParse(group *Group) error

	// WasSupplied reports whether the named option was explicitly given a
	// value by the source, as opposed to resolving to its default.
	WasSupplied(name string) bool

	// SuppliedOptions returns the names of every explicitly supplied
	// option, sorted.
	SuppliedOptions() []string

	// CheckUnregistered reports source entries no registered group
	// declares. Every offender is sent to log; a non-nil error summarises
	// them.
	CheckUnregistered(log Logger) error

	// Insert adds a raw key and value to the source ahead of future
	// parses. An empty value inserts a bare flag.
	Insert(key, value string)

	// Replace rewrites the value of a key already present in the source.
	Replace(key, value string) error

	// PositionalTokens returns source tokens not claimed by any option.
	PositionalTokens() []string
}

// Logger receives diagnostics a registry observes but cannot act on itself.
type Logger interface {
	Warnf(format string, args ...any)
}
