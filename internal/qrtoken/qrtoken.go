// Package qrtoken derives and verifies the per-day unlock tokens printed on QR
// codes. Tokens are computed, never stored, so verification needs only the
// secret.
package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const digestLength = 16

var (
	ErrMalformedToken = errors.New("malformed qr token")
	ErrTokenMismatch  = errors.New("qr token does not match")
	ErrDayMismatch    = errors.New("qr token is for a different day")
)

// Scheme issues and checks unlock tokens for a (countdown, day) pair.
type Scheme interface {
	Derive(countdownID uuid.UUID, day int) string
	Verify(token string, countdownID uuid.UUID, day int) error
	ParseDay(token string) (int, error)
}

// HMACScheme is the stateless scheme: "day{N}-" followed by the first 16 hex
// characters of HMAC-SHA256(secret, "{countdownID}-{N}-{secret}").
// Individual tokens cannot be revoked; rotating the secret invalidates all of them.
type HMACScheme struct {
	secret []byte
}

func NewHMACScheme(secret string) *HMACScheme {
	return &HMACScheme{secret: []byte(secret)}
}

func (s *HMACScheme) Derive(countdownID uuid.UUID, day int) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s-%d-%s", countdownID.String(), day, s.secret)
	digest := hex.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("day%d-%s", day, digest[:digestLength])
}

// ParseDay extracts N from the "day{N}-" prefix.
func (s *HMACScheme) ParseDay(token string) (int, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(token), "day")
	if !ok {
		return 0, ErrMalformedToken
	}
	num, digest, ok := strings.Cut(rest, "-")
	if !ok || num == "" || digest == "" {
		return 0, ErrMalformedToken
	}
	day, err := strconv.Atoi(num)
	if err != nil || day < 1 {
		return 0, ErrMalformedToken
	}
	return day, nil
}

// Verify recomputes the token for (countdownID, day) and compares in constant time.
func (s *HMACScheme) Verify(token string, countdownID uuid.UUID, day int) error {
	token = strings.TrimSpace(token)
	tokenDay, err := s.ParseDay(token)
	if err != nil {
		return err
	}
	if tokenDay != day {
		return ErrDayMismatch
	}
	expected := s.Derive(countdownID, day)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrTokenMismatch
	}
	return nil
}
