package webhook

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// ComputeSignature returns the hex HMAC-SHA512 of body under secret, the
// value Paystack sends in the x-paystack-signature header.
func ComputeSignature(secret string, body []byte) string {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature checks the signature header against the raw request body.
// The comparison is constant-time. The raw body must be used as received;
// re-serialized JSON would not match.
func VerifySignature(secret string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	expected := ComputeSignature(secret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
