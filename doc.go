// Package numfmt converts between text and IEEE-754 binary floats (and
// fixed-width integers), synchronously. Integer parsing and writing do not
// allocate; parsing and writing a finite float make small heap allocations
// (digit scratch buffers and a per-radix power table) on each call. It is
// a dependency for higher-level numeric formatting code,
// not an end-user formatting library: callers supply their own buffers
// and own grammar choices via Options.
//
// Parsing a float tries, in order, an exact hardware fast path
// (internal/fastpath), the Eisel-Lemire moderate path
// (internal/eiselLemire), and an arbitrary-precision slow path
// (internal/slowpath) that is always correct and serves as the other two
// paths' backstop. Writing a float uses internal/dragonbox to generate
// the shortest decimal digit string that round-trips back to the original
// value under round-to-nearest-even parsing.
//
// Go's "0x1.8p3" hex-float literal syntax is out of scope; see Go's own
// strconv package for that grammar. Decimal (IEEE-754-2008) arithmetic,
// correctly-rounded transcendental functions, and locale-sensitive
// parsing are likewise out of scope.
package numfmt
