package parser

// FuncDecl represents one tagged function prototype recovered from a header.
type FuncDecl struct {
	ReturnType string
	Name       string
	Params     []*Param
	DocComment string // documentation comment immediately preceding the declaration
}

// Param represents a function parameter
type Param struct {
	Type string
	Name string
}

// EnumDecl represents an enum typedef recovered from a header.
// Member values are kept in their textual form (decimal or hex as written)
// so code generation never loses precision.
type EnumDecl struct {
	Kind       string // always "enum" for now
	Name       string
	Members    []*EnumMember
	DocComment string
}

// EnumMember is one (symbol, value) pair of an enum.
type EnumMember struct {
	Symbol string
	Value  string
}

// Unit is one logical declaration: a fully-joined, comment-stripped
// statement paired with the documentation block that preceded it.
type Unit struct {
	Text string
	Doc  string
}
