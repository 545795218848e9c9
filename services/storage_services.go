package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"coderfest/config"
)

// ProofStore keeps payment proof files on disk in a private directory and
// hands out time-bounded HMAC-signed download links served by the API. The
// directory is never exposed directly; a valid signature is the only way in.
type ProofStore struct {
	dir        string
	signingKey []byte
	maxAge     time.Duration
}

var (
	ErrNoSigningKey     = errors.New("file signing key is not configured")
	ErrInvalidSignature = errors.New("invalid file signature")
	ErrLinkExpired      = errors.New("signed link has expired")
)

// NewProofStore builds the store from configuration
func NewProofStore() *ProofStore {
	return &ProofStore{
		dir:        config.StorageDir,
		signingKey: []byte(config.FileSigningKey),
		maxAge:     config.SignedURLMaxAge,
	}
}

// Init creates the storage directory, the equivalent of creating the private
// bucket on startup
func (s *ProofStore) Init() error {
	return os.MkdirAll(s.dir, 0o755)
}

// Save writes the proof bytes under the given object name and returns the
// number of bytes written. The name is flattened to its base so a crafted
// filename cannot escape the storage directory.
func (s *ProofStore) Save(name string, r io.Reader) (int64, error) {
	dst := filepath.Join(s.dir, filepath.Base(name))
	f, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("create proof file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(dst)
		return 0, fmt.Errorf("write proof file: %w", err)
	}
	return n, nil
}

// Path returns the on-disk location of a stored object
func (s *ProofStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// SignedURL returns an absolute, time-bounded link to a stored object.
// Failure to produce a reference fails the caller; an empty string is never
// silently substituted.
func (s *ProofStore) SignedURL(name string) (string, error) {
	if len(s.signingKey) == 0 {
		return "", ErrNoSigningKey
	}
	name = filepath.Base(name)
	expires := time.Now().Add(s.maxAge).Unix()
	sig := s.sign(name, expires)
	return fmt.Sprintf("%s/files/%s?expires=%d&sig=%s",
		config.PublicBaseURL, url.PathEscape(name), expires, sig), nil
}

// Verify checks a presented signature and expiry for an object name
func (s *ProofStore) Verify(name, expiresStr, sig string) error {
	if len(s.signingKey) == 0 {
		return ErrNoSigningKey
	}
	expires, err := strconv.ParseInt(expiresStr, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}
	expected := s.sign(filepath.Base(name), expires)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return ErrInvalidSignature
	}
	if time.Now().Unix() > expires {
		return ErrLinkExpired
	}
	return nil
}

func (s *ProofStore) sign(name string, expires int64) string {
	mac := hmac.New(sha256.New, s.signingKey)
	fmt.Fprintf(mac, "%s:%d", name, expires)
	return hex.EncodeToString(mac.Sum(nil))
}
