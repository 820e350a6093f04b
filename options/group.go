package options

// Group collects related option declarations under one display heading.
// Registries resolve groups as a unit and may treat a group as enabled only
// when its Necessary options were supplied.
type Group struct {
	Name    string
	Options []Option
}

// NewGroup returns an empty group with the given heading.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Add appends option handles to the group and returns it for chaining.
func (g *Group) Add(opts ...Option) *Group {
	g.Options = append(g.Options, opts...)
	return g
}

// ContainsNecessary reports whether at least one option in the group carries
// the Necessary marker.
func (g *Group) ContainsNecessary() bool {
	for _, opt := range g.Options {
		if opt.Base().Necessary {
			return true
		}
	}
	return false
}
