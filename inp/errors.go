// Package inp parses EPANET .inp files (plain UTF-8 text, line-oriented,
// bracket-delimited sections) into a *network.Network. Per-row parse
// faults are tolerant: a malformed numeric field defaults to zero rather
// than aborting the whole read, matching the historical parser this one
// is a port of. A read failure (the file can't be opened or read at
// all) is the only fatal error this package returns.
package inp

import "errors"

// ErrRead wraps an underlying filesystem/IO failure opening or reading
// the .inp file.
var ErrRead = errors.New("inp: read error")
