package ast

// Visibility is the effective visibility of a declaration. Restricted
// forms such as pub(crate) parse as VisPrivate with a VisSpan covering
// the whole modifier, so promoting them rewrites the restriction away.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
)

func (v Visibility) String() string {
	switch v {
	case VisPrivate:
		return "private"
	case VisPublic:
		return "pub"
	default:
		return "vis?"
	}
}
