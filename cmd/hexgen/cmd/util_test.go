package cmd

import (
	"errors"
	"github.com/kurumiimari/hexbytes"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseDecls(t *testing.T) {
	t.Parallel()

	t.Run("parses name/literal pairs", func(t *testing.T) {
		decls, err := parseDecls([]string{"Genesis=010aff", "Magic=ABCD"})
		require.NoError(t, err)
		require.Len(t, decls, 2)
		require.Equal(t, "Genesis", decls[0].Name)
		require.Equal(t, []byte{0x01, 0x0a, 0xff}, decls[0].Bytes)
		require.Equal(t, []byte{0xab, 0xcd}, decls[1].Bytes)
	})

	t.Run("rejects arguments without an equals sign", func(t *testing.T) {
		_, err := parseDecls([]string{"Genesis"})
		require.Error(t, err)
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		_, err := parseDecls([]string{"2fast=0a"})
		require.Error(t, err)
		_, err = parseDecls([]string{"for=0a"})
		require.Error(t, err)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := parseDecls([]string{"A=0a", "A=0b"})
		require.Error(t, err)
	})

	t.Run("rejects odd-length literals", func(t *testing.T) {
		_, err := parseDecls([]string{"A=111"})
		require.True(t, errors.Is(err, hexbytes.ErrOddLength))
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		_, err := parseDecls([]string{"A=11X1"})
		var invalid *hexbytes.InvalidByteError
		require.True(t, errors.As(err, &invalid))
		require.Equal(t, byte('X'), invalid.Byte)
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	decls, err := parseDecls([]string{"Genesis=010aff", "Empty="})
	require.NoError(t, err)

	src, err := render("chain", decls)
	require.NoError(t, err)

	exp := `// Code generated by hexgen. DO NOT EDIT.

package chain

// Genesis holds the bytes of "010aff".
var Genesis = [3]byte{0x01, 0x0a, 0xff}

// Empty holds the bytes of "".
var Empty = [0]byte{}
`
	require.Equal(t, exp, string(src))
}
