package ftpkit

import (
	"crypto/md5" //nolint:gosec // MD5 used for checksum verification, not security
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ChecksumAlgorithm identifies a supported checksum algorithm
type ChecksumAlgorithm string

// Supported checksum algorithms
const (
	ChecksumMD5    ChecksumAlgorithm = "md5"
	ChecksumSHA256 ChecksumAlgorithm = "sha256"
	ChecksumCRC32  ChecksumAlgorithm = "crc32"
	ChecksumXXHash ChecksumAlgorithm = "xxhash"
)

// NewHasher creates a new hash.Hash for the given algorithm.
// Returns an error if the algorithm is not supported.
func NewHasher(algorithm ChecksumAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case ChecksumMD5:
		return md5.New(), nil //nolint:gosec // MD5 used for checksum verification, not security
	case ChecksumSHA256:
		return sha256.New(), nil
	case ChecksumCRC32:
		return crc32.NewIEEE(), nil
	case ChecksumXXHash:
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported checksum algorithm: %s", ErrNotSupported, algorithm)
	}
}

// CalculateChecksum reads from the reader and calculates the checksum using
// the specified algorithm. Returns the hex-encoded checksum string.
func CalculateChecksum(r io.Reader, algorithm ChecksumAlgorithm) (string, error) {
	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to calculate checksum: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// ChecksumFile calculates the checksum of a local file using the specified
// algorithm. Returns the hex-encoded checksum string.
func ChecksumFile(path string, algorithm ChecksumAlgorithm) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return CalculateChecksum(f, algorithm)
}
