package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// Покрытие:
//   - пустой/некорректный токен -> истёк (fail closed);
//   - отсутствующий и нечисловой exp -> истёк;
//   - живой токен -> не истёк; прошедший exp -> истёк;
//   - граница now == exp -> истёк.

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)
	return raw
}

func TestExpired_MalformedTokens(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	badPayload := "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte("{not-json")) + ".sig"

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "garbage", raw: "garbage"},
		{name: "two_segments", raw: "aaa.bbb"},
		{name: "invalid_base64_payload", raw: "aaa.!!!.ccc"},
		{name: "payload_not_json", raw: badPayload},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.True(t, Expired(tt.raw, now))
		})
	}
}

func TestExpired_MissingOrInvalidExp(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("no_exp_claim", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{"sub": "user"})
		require.True(t, Expired(raw, now))
	})

	t.Run("non_numeric_exp", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{"exp": "tomorrow"})
		require.True(t, Expired(raw, now))
	})
}

func TestExpired_Comparison(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0).UTC()

	t.Run("future_exp_not_expired", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{"exp": now.Add(15 * time.Minute).Unix()})
		require.False(t, Expired(raw, now))
	})

	t.Run("past_exp_expired", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Second).Unix()})
		require.True(t, Expired(raw, now))
	})

	t.Run("boundary_now_equals_exp", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{"exp": now.Unix()})
		require.True(t, Expired(raw, now))
	})
}
