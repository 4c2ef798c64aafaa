package latex

import "fmt"

// ListKind selects between numbered and unnumbered lists.
type ListKind uint8

// List kinds.
const (
	// Enumerate is a numbered list.
	Enumerate ListKind = iota
	// Itemize is an unnumbered (bullet) list.
	Itemize
)

// EnvironmentName returns the LaTeX environment name for the list kind.
func (k ListKind) EnvironmentName() string {
	switch k {
	case Enumerate:
		return "enumerate"
	case Itemize:
		return "itemize"
	default:
		return "itemize"
	}
}

// Item is a single list entry.
type Item string

// List is an ordered sequence of items rendered as an enumerate or itemize
// environment.
type List struct {
	// Kind selects the environment the list renders as.
	Kind ListKind

	argument string
	items    []Item
}

// NewList creates an empty list of the given kind.
func NewList(kind ListKind) *List {
	return &List{Kind: kind}
}

// Push appends items to the list. Each item may be a string, an Item, or a
// fmt.Stringer; anything else is stringified with fmt.Sprint.
func (l *List) Push(items ...any) *List {
	for _, item := range items {
		switch x := item.(type) {
		case Item:
			l.items = append(l.items, x)
		case string:
			l.items = append(l.items, Item(x))
		default:
			l.items = append(l.items, Item(fmt.Sprint(x)))
		}
	}
	return l
}

// Argument sets the optional bracket argument emitted after the begin
// marker, e.g. the label style of an enumerate environment.
func (l *List) Argument(argument string) *List {
	l.argument = argument
	return l
}

// ArgumentText returns the bracket argument, or the empty string if unset.
func (l *List) ArgumentText() string {
	return l.argument
}

// Items returns the list items in insertion order.
func (l *List) Items() []Item {
	return l.items
}
