package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used for analysis and request ids.
var NewULID = func() string {
	return ulid.Make().String()
}
