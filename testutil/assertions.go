package testutil

import (
	"encoding/hex"
	"github.com/kurumiimari/hexbytes"
	"github.com/stretchr/testify/require"
	"testing"
)

func RequireEqualHexBytes(t *testing.T, exp string, act []byte) {
	require.Equal(t, exp, hex.EncodeToString(act))
}

func RequireDecodes(t *testing.T, s string) []byte {
	out, err := hexbytes.Decode(s)
	require.NoError(t, err)
	return out
}
