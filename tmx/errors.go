package tmx

import "errors"

// Parse failures are fatal: there is no partial or degraded Map. Callers
// should treat any error from Parse or LoadFile as a failed level load.
var (
	// ErrMissingAttribute is returned when a structurally required attribute
	// (map dimensions, tileset firstgid, object x/y, ...) is absent.
	ErrMissingAttribute = errors.New("tmx: missing required attribute")

	// ErrMalformedNumber is returned when an attribute or data token expected
	// to be numeric does not parse.
	ErrMalformedNumber = errors.New("tmx: malformed number")

	// ErrUnsupportedEncoding is returned when a layer's data element uses any
	// encoding other than "csv".
	ErrUnsupportedEncoding = errors.New("tmx: unsupported layer data encoding")
)
