package shape

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind discriminates the recognized Shape variants.
type Kind int

const (
	KindInvalid Kind = iota
	KindLeaf
	KindArray
	KindRecord

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
