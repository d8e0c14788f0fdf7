package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

func computeTestSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
