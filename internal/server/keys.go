package server

import (
	"crypto/sha256"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/hkdf"
)

// sessionKeys derives independent cookie signing and encryption keys from
// SESSION_SECRET, so one configured secret serves both.
func sessionKeys(secret string) (authKey, encKey []byte, err error) {
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte("avy-dashboard session v1"))

	authKey = make([]byte, 32)
	encKey = make([]byte, 32)
	if _, err := io.ReadFull(r, authKey); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to derive session auth key")
	}
	if _, err := io.ReadFull(r, encKey); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to derive session encryption key")
	}
	return authKey, encKey, nil
}
