package common

import (
	"testing"
	"unicode"
)

func TestGenerateOTP_LengthAndDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != OTPLength {
			t.Fatalf("expected length %d, got %d (%q)", OTPLength, len(code), code)
		}
		for _, r := range code {
			if !unicode.IsDigit(r) {
				t.Fatalf("non-digit %q in code %q", r, code)
			}
		}
	}
}

func TestGenerateOTP_EntropyHint(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		code, err := GenerateOTP()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[code] = struct{}{}
	}
	if len(seen) == 1 {
		t.Fatalf("20 generated codes were all identical; generator is broken")
	}
}
