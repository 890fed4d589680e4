package ulid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string for request IDs.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewULIDAt generates a ULID carrying t as its timestamp, so snapshot IDs sort by generation time.
var NewULIDAt = func(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}
