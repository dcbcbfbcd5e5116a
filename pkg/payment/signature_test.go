package payment

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

func signedHeader(t time.Time, payload []byte, secret string) string {
	return fmt.Sprintf("t=%d,v1=%s", t.Unix(), ComputeSignature(t, payload, secret))
}

func TestVerifySignature(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"type":"checkout.session.completed"}`)

	t.Run("valid signature passes", func(t *testing.T) {
		header := signedHeader(now, payload, testSecret)
		assert.NoError(t, VerifySignature(payload, header, testSecret, now))
	})

	t.Run("tampered payload fails", func(t *testing.T) {
		header := signedHeader(now, payload, testSecret)
		err := VerifySignature([]byte(`{"type":"forged"}`), header, testSecret, now)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		header := signedHeader(now, payload, "whsec_other")
		err := VerifySignature(payload, header, testSecret, now)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("stale timestamp fails", func(t *testing.T) {
		signedAt := now.Add(-Tolerance - time.Second)
		header := signedHeader(signedAt, payload, testSecret)
		err := VerifySignature(payload, header, testSecret, now)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("timestamp within tolerance passes", func(t *testing.T) {
		signedAt := now.Add(-Tolerance + time.Second)
		header := signedHeader(signedAt, payload, testSecret)
		assert.NoError(t, VerifySignature(payload, header, testSecret, now))
	})

	t.Run("malformed header fails", func(t *testing.T) {
		for _, header := range []string{"", "garbage", "t=abc,v1=def", "v1=deadbeef"} {
			err := VerifySignature(payload, header, testSecret, now)
			assert.ErrorIs(t, err, ErrInvalidSignature, "header %q", header)
		}
	})

	t.Run("one valid signature among several passes", func(t *testing.T) {
		header := fmt.Sprintf("t=%d,v1=deadbeef,v1=%s",
			now.Unix(), ComputeSignature(now, payload, testSecret))
		assert.NoError(t, VerifySignature(payload, header, testSecret, now))
	})
}
