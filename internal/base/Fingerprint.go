package base

import (
	"encoding/hex"
	"io"

	"github.com/minio/sha256-simd"
)

var LogFingerprint = NewLogCategory("Fingerprint")

/***************************************
 * Fingerprint
 ***************************************/

type Fingerprint [sha256.Size]byte

func (x Fingerprint) Slice() []byte {
	return x[:]
}
func (x Fingerprint) String() string {
	return hex.EncodeToString(x[:])
}
func (x Fingerprint) ShortString() string {
	return hex.EncodeToString(x[:8])
}
func (x Fingerprint) Valid() bool {
	for _, it := range x {
		if it != 0 {
			return true
		}
	}
	return false
}
func (x Fingerprint) Equals(other Fingerprint) bool {
	return x == other
}

func BytesFingerprint(data []byte) Fingerprint {
	return sha256.Sum256(data)
}

func StringFingerprint(in string) Fingerprint {
	digester := sha256.New()
	io.WriteString(digester, in)

	var result Fingerprint
	copy(result[:], digester.Sum(nil))
	return result
}

func ReaderFingerprint(rd io.Reader) (result Fingerprint, err error) {
	digester := sha256.New()
	if _, err = io.Copy(digester, rd); err == nil {
		copy(result[:], digester.Sum(nil))
	}
	return
}
