package utils

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// charset excludes easily confused characters (0/O, 1/I/L)
const teamCodeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateTeamCode generates a random invite code of the given length.
// Uniqueness within an event is enforced by the teams collection index,
// callers are expected to retry on a duplicate key error.
func GenerateTeamCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("team code length must be positive")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "could not read random bytes for team code")
	}

	for i, b := range buf {
		buf[i] = teamCodeCharset[int(b)%len(teamCodeCharset)]
	}

	return string(buf), nil
}
