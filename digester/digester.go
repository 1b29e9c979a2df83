package digester

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/byte4ever/md5kit/md5"
)

// Ext is the suffix of sidecar digest files.
const Ext = ".md5"

// CalculateDigest computes the MD5 hex digest of the file at
// path. Returns empty string with no error if the file does not
// exist.
func CalculateDigest(path string) (result string, retErr error) {
	const errCtx = "calculating digest"

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	fi, err := os.Open(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	sum, err := md5.SumReader(fi)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return md5.ToHex(sum), nil
}

// GetDigest reads a stored digest from a sidecar .md5 file.
// Both a bare digest and an md5sum line are accepted. Returns
// empty string with no error if the sidecar file does not
// exist.
func GetDigest(path string) (string, error) {
	const errCtx = "getting stored digest"

	dp := path + Ext

	if _, err := os.Stat(dp); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	content, err := os.ReadFile(dp) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	fields := strings.Fields(string(content))
	if len(fields) == 0 {
		return "", fmt.Errorf("%s: %s is empty", errCtx, dp)
	}

	sum, err := md5.ParseHex(fields[0])
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", errCtx, dp, err)
	}

	return md5.ToHex(sum), nil
}

// VerifyDigest compares the calculated digest of the file
// against its stored sidecar digest. A missing sidecar never
// verifies.
func VerifyDigest(path string) (bool, error) {
	const errCtx = "verifying digest"

	calc, err := CalculateDigest(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	stored, err := GetDigest(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	return stored != "" && calc == stored, nil
}

// SaveDigest calculates the digest of a file and writes it
// to a .md5 sidecar file as "<digest>  <basename>".
func SaveDigest(path string) error {
	const errCtx = "saving digest"

	digest, err := CalculateDigest(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if digest == "" {
		return fmt.Errorf("%s: %s: %w", errCtx, path, os.ErrNotExist)
	}

	line := digest + "  " + filepath.Base(path) + "\n"

	if err := os.WriteFile(path+Ext, []byte(line), 0o600); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
