package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string, used as a per-request correlation id on
// outbound directory calls. ULIDs sort lexicographically by creation time.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
