package index

// Kind selects which concrete Index variant create_index builds.
type Kind int

const (
	Eq Kind = iota
	OrderedKind
)

// New builds an empty Index of the requested kind.
func New(kind Kind) Index {
	if kind == OrderedKind {
		return NewOrdered()
	}
	return NewEquality()
}
