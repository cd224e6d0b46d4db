package typemap

// Direction says whether a parameter is supplied by the caller, produced
// for the caller, or both. The numeric values are rendered verbatim into
// the generated argument-flag tuples.
type Direction int

const (
	In    Direction = 1 // input only
	Out   Direction = 2 // output only
	InOut Direction = 3 // in- and output
)

// directions lists the only types that are not plain inputs: the
// int/unsigned pointers used to return cursor and size values, and the
// exception pointer threaded in and out of every failable call.
var directions = map[string]Direction{
	"int*":                Out,
	"unsigned*":           Out,
	"libvlc_exception_t*": InOut,
}

// DirectionOf returns the passing direction for a type token.
// Unlisted types are inputs.
func DirectionOf(typ string) Direction {
	if d, ok := directions[typ]; ok {
		return d
	}
	return In
}
