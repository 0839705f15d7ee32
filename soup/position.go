package soup

// Position locates a construct in the original input. Lines and columns
// are 1-based; Offset counts bytes. The zero value means the parser
// inserted the construct on its own and there is nothing to point at.
type Position struct {
	Line   uint
	Column uint
	Offset uint
}

func (p Position) IsZero() bool {
	return p == Position{}
}
