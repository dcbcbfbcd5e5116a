package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader carries the webhook signature in the form
// "t=<unix>,v1=<hex hmac>". The HMAC is computed over "<unix>.<payload>"
// with the shared webhook secret.
const SignatureHeader = "Payment-Signature"

// Tolerance bounds how old a signed timestamp may be before the event is
// rejected as a possible replay.
const Tolerance = 5 * time.Minute

var ErrInvalidSignature = errors.New("invalid webhook signature")

// ComputeSignature produces the v1 signature for a payload at the given
// timestamp. Exposed so tests and local tooling can forge valid events.
func ComputeSignature(t time.Time, payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", t.Unix())
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the signature header against the raw request body.
// Any failure (malformed header, stale timestamp, signature mismatch)
// returns ErrInvalidSignature; the payload must not be trusted in that case.
func VerifySignature(payload []byte, header, secret string, now time.Time) error {
	var timestamp time.Time
	var signatures []string

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			unix, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: bad timestamp", ErrInvalidSignature)
			}
			timestamp = time.Unix(unix, 0)
		case "v1":
			signatures = append(signatures, value)
		}
	}

	if timestamp.IsZero() || len(signatures) == 0 {
		return fmt.Errorf("%w: missing timestamp or signature", ErrInvalidSignature)
	}

	if now.Sub(timestamp) > Tolerance || timestamp.Sub(now) > Tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
	}

	expected := ComputeSignature(timestamp, payload, secret)
	for _, sig := range signatures {
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return nil
		}
	}

	return fmt.Errorf("%w: signature mismatch", ErrInvalidSignature)
}
