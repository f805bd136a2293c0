package directory

import (
	"crypto/md5"
	"encoding/hex"
)

// separator is the application-specific constant the directory expects
// between the two keys.
const separator = "|||##Glintler"

// ComputeSignature derives the request credential the directory checks: a
// hex MD5 of publicKey + separator + privateKey. The scheme is the
// directory's compatibility contract; changing the hash or separator breaks
// interop with it.
func ComputeSignature(publicKey, privateKey string) string {
	sum := md5.Sum([]byte(publicKey + separator + privateKey))
	return hex.EncodeToString(sum[:])
}
