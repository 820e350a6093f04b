package options

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
)

// NameExtractor implements Interface without consuming any input. It records
// the names a sequence of group registrations would declare, which is what
// documentation and shell-completion generators need: they replay the same
// registration code a real registry runs, minus the parsing.
type NameExtractor struct {
	names      map[string]struct{}
	groupNames map[string]struct{}
	generated  string
}

var _ Interface = (*NameExtractor)(nil)

// NewNameExtractor returns an extractor with no recorded names.
func NewNameExtractor() *NameExtractor {
	return &NameExtractor{
		names:      make(map[string]struct{}),
		groupNames: make(map[string]struct{}),
	}
}

// AddAndParse records the names the group declares. No values are resolved
// and no option state changes.
func (e *NameExtractor) AddAndParse(group *Group) error {
	if group == nil || group.Name == "" {
		return errors.New("option groups must be named for name extraction")
	}

	e.groupNames[group.Name] = struct{}{}
	e.generated = ""
	for _, opt := range group.Options {
		base := opt.Base()
		e.names[base.Name] = struct{}{}
		if !base.Necessary {
			continue
		}
		if e.generated == "" {
			e.generated = base.Name
		} else {
			e.generated += "_" + base.Name
		}
	}
	return nil
}

// WasSupplied always reports false: the extractor has no input.
func (e *NameExtractor) WasSupplied(string) bool {
	return false
}

// SuppliedOptions always returns an empty set.
func (e *NameExtractor) SuppliedOptions() []string {
	return nil
}

// CheckUnregistered is a no-op: with no input there is nothing unregistered.
func (e *NameExtractor) CheckUnregistered(Logger) error {
	return nil
}

// Insert is a no-op.
func (e *NameExtractor) Insert(string, string) {}

// Replace is a no-op.
func (e *NameExtractor) Replace(string, string) error {
	return nil
}

// PositionalTokens always returns an empty set.
func (e *NameExtractor) PositionalTokens() []string {
	return nil
}

// Names returns the sorted names of every option recorded so far.
func (e *NameExtractor) Names() []string {
	return slices.Sorted(maps.Keys(e.names))
}

// GroupNames returns the sorted headings of every group recorded so far.
func (e *NameExtractor) GroupNames() []string {
	return slices.Sorted(maps.Keys(e.groupNames))
}

// GeneratedName returns the Necessary option names of the most recently
// recorded group, joined with underscores. Empty when that group had no
// Necessary options.
func (e *NameExtractor) GeneratedName() string {
	return e.generated
}
