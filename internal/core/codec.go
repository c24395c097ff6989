package core

// Codec converts between tiles and their single-character text form.
// Decode reports false for characters that are not valid tiles.
type Codec[T any] struct {
	Decode func(r rune) (T, bool)
	Encode func(t T) rune
}

// RuneCodec stores each character unchanged.
var RuneCodec = Codec[rune]{
	Decode: func(r rune) (rune, bool) { return r, true },
	Encode: func(r rune) rune { return r },
}

// EnumCodec builds a codec from a character table. Tiles missing from the
// table encode as '?'.
func EnumCodec[T comparable](table map[rune]T) Codec[T] {
	reverse := make(map[T]rune, len(table))
	for r, t := range table {
		if prev, ok := reverse[t]; !ok || r < prev {
			reverse[t] = r
		}
	}
	return Codec[T]{
		Decode: func(r rune) (T, bool) {
			t, ok := table[r]
			return t, ok
		},
		Encode: func(t T) rune {
			if r, ok := reverse[t]; ok {
				return r
			}
			return '?'
		},
	}
}
