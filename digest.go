package objsig

import (
	_ "crypto/sha256"
	_ "crypto/sha512"
	"fmt"

	"github.com/signadot/objsig/notation"
	"github.com/signadot/objsig/value"

	"github.com/opencontainers/go-digest"
)

// Digest hashes the notation of v with alg, for callers that need more
// than a 128 bit fingerprint. Values with equal signatures have equal
// digests.
func Digest(v *value.Value, alg digest.Algorithm, opts ...Option) (digest.Digest, error) {
	if !alg.Available() {
		return "", fmt.Errorf("%w: %q", digest.ErrDigestUnsupported, alg)
	}
	o := newSignOpts(opts)
	digester := alg.Digester()
	if err := notation.Write(digester.Hash(), v, o.notateOpts()...); err != nil {
		return "", err
	}
	return digester.Digest(), nil
}
