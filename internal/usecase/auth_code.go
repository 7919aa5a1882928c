package usecase

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// authCodeAlphabet leaves out 0/O, 1/I/L so codes survive being read over the phone.
const authCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const DefaultAuthCodeLength = 6

func newAuthCode(length int) (string, error) {
	if length <= 0 {
		length = DefaultAuthCodeLength
	}
	max := big.NewInt(int64(len(authCodeAlphabet)))
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(authCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// NormalizeAuthCode upper-cases and trims operator or customer input.
func NormalizeAuthCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
