package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks the webhook signature the provider sends alongside a
// completed payment: HMAC-SHA256 over "<order id>|<payment id>" keyed with
// the shared secret, hex encoded. Comparison is constant time; any mismatch
// means the payload must not be trusted.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
