package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// Three generations of stored credentials coexist:
//
//  1. Marker: "__NEEDS_HASH__:<plaintext>" — bootstrap records awaiting first login.
//  2. LegacyHash: SHA-256 over password + one shared salt, or any value that is
//     not a 64-char hex digest with a per-user salt alongside it.
//  3. SaltedHash: SHA-256 over password + per-user random salt (target format).
//
// Marker and LegacyHash credentials are migrated to SaltedHash lazily, exactly
// once, on the first successful login after the scheme change.

// MarkerPrefix is the sentinel in front of plaintext bootstrap passwords.
const MarkerPrefix = "__NEEDS_HASH__:"

// legacySharedSalt is the single hardcoded salt of the pre-per-user-salt scheme.
const legacySharedSalt = "accubooks-salt-ehsaan-ahmad"

var saltedHashPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// CredentialKind tags the format of a stored credential.
type CredentialKind int

const (
	CredentialMarker CredentialKind = iota
	CredentialLegacyHash
	CredentialSalted
)

func (k CredentialKind) String() string {
	switch k {
	case CredentialMarker:
		return "marker"
	case CredentialLegacyHash:
		return "legacy_hash"
	default:
		return "salted_hash"
	}
}

// Credential is the classified form of a user's stored password.
type Credential struct {
	Kind      CredentialKind
	Plaintext string // Marker only: the embedded plaintext value
	Hash      string // LegacyHash and Salted
	Salt      string // Salted only
}

// ClassifyCredential inspects a stored password (and the optional per-user
// salt) and returns its tagged format. Priority order matters: the marker
// prefix wins, then anything not matching the salted scheme is legacy.
func ClassifyCredential(password, salt string) Credential {
	if strings.HasPrefix(password, MarkerPrefix) {
		return Credential{Kind: CredentialMarker, Plaintext: strings.TrimPrefix(password, MarkerPrefix)}
	}
	if !saltedHashPattern.MatchString(password) || salt == "" {
		return Credential{Kind: CredentialLegacyHash, Hash: password}
	}
	return Credential{Kind: CredentialSalted, Hash: password, Salt: salt}
}

// Verify reports whether the supplied password matches this credential.
func (c Credential) Verify(password string) bool {
	switch c.Kind {
	case CredentialMarker:
		return password == c.Plaintext
	case CredentialLegacyHash:
		// Either the value was stored as plaintext outright, or it is a
		// digest under the shared legacy salt.
		return password == c.Hash || HashPassword(password, legacySharedSalt) == c.Hash
	default:
		return HashPassword(password, c.Salt) == c.Hash
	}
}

// NeedsMigration reports whether a successful login must rewrite the stored
// credential to the salted target format.
func (c Credential) NeedsMigration() bool {
	return c.Kind != CredentialSalted
}

// HashPassword computes the target credential format:
// hex(SHA-256(password + salt)), 64 lowercase hex characters.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// GenerateSalt returns a fresh 16-byte random salt, hex encoded.
func GenerateSalt() string {
	return randomHex(16)
}

// NewSessionToken returns a fresh opaque 32-byte session token, hex encoded.
func NewSessionToken() string {
	return randomHex(32)
}

func randomHex(n int) string {
	b := make([]byte, n)
	// rand.Read never fails on supported platforms; it panics internally
	// when the kernel entropy source is broken.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
