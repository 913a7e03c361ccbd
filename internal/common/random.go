package common

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in a one-time code. Both halves of the
// system depend on it: the server mints codes of this length and the client
// refuses to submit anything else.
const OTPLength = 6

// GenerateOTP returns a random numeric one-time code of OTPLength digits,
// left-padded with zeros. It draws from crypto/rand.
func GenerateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < OTPLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("otp generation: %w", err)
	}
	return fmt.Sprintf("%0*d", OTPLength, n), nil
}
