// Package deepcopy clones values by serializing them to JSON and decoding
// the result into a fresh value.
//
// Only JSON-representable data survives the round trip. Unexported struct
// fields and fields tagged `json:"-"` are dropped. Channels, functions,
// complex numbers, NaN, ±Inf and cyclic pointer graphs make the whole copy
// fail; there are no partial results.
//
// JSONC input (JSON with // and /* */ comments and trailing commas) is
// accepted by FromJSONC, which strips it with github.com/tidwall/jsonc
// before decoding.
package deepcopy
