package session

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mcoot/mindcare/internal/model"
)

var errMissingID = errors.New("session record has no id")

// decodeSession parses a persisted session snapshot. A JSON null means no
// session and yields nil.
func decodeSession(data []byte) (*model.SessionUser, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var user model.SessionUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, errMissingID
	}
	return &user, nil
}

// passwordDigest is what bcrypt hashes. bcrypt only accepts 72 bytes, so
// the password is reduced to a fixed 44-byte SHA-256 digest first.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// normalizeEmail trims surrounding whitespace. Case is significant.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
