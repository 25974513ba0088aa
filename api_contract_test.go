// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIContract_DecodeAllowsSingleTrailingZeroMarker(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	framed, err := Encode(src)
	require.NoError(t, err)

	payload := append(append([]byte{}, framed...), 0x00)
	out, err := Decode(payload)
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestAPIContract_DecodeOfSingleChunkMatchesStreamFacade(t *testing.T) {
	src := bytes.Repeat([]byte("short-output"), 32)

	framed, err := Encode(src)
	require.NoError(t, err)

	dec := NewChunkDecoder()
	out, err := dec.DecodeChunk(framed, make([]byte, len(src)))
	require.NoError(t, err)
	require.Equal(t, src, out)

	streamOut, err := Decode(framed)
	require.NoError(t, err)
	require.Equal(t, out, streamOut)
}

// TestAPIContract_ScenarioS6 is spec.md §8's S6: corrupting the first magic
// byte of any valid encoder output must fail decoding with CorruptInput
// identifying block 0, never partially decoding or panicking.
func TestAPIContract_ScenarioS6(t *testing.T) {
	src := []byte("any valid encoder output works for this scenario")

	framed, err := Encode(src)
	require.NoError(t, err)

	corrupted := append([]byte{}, framed...)
	corrupted[0] = 0x00

	_, err = Decode(corrupted)
	require.Error(t, err)

	var cie *CorruptInputError
	require.True(t, errors.As(err, &cie))
	require.Equal(t, 0, cie.Index)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestAPIContract_IsValidChunkAgreesWithEncoderOutput(t *testing.T) {
	for _, in := range testInputSet() {
		framed, err := Encode(in.data)
		require.NoError(t, err)
		require.True(t, IsValidChunk(framed), "Encode output for %q must pass IsValidChunk", in.name)
	}
}

func TestAPIContract_FramingValidity(t *testing.T) {
	// spec.md §8 property 2: declared chunk lengths sum to |X|.
	src := bytes.Repeat([]byte("framing validity check, "), 5000)

	framed, err := Encode(src)
	require.NoError(t, err)

	total := 0
	for pos := 0; pos < len(framed); {
		hdr, err := parseHeader(framed, pos)
		require.NoError(t, err)

		total += hdr.uncompressedLen
		pos += hdr.headerLen + hdr.payloadLen
	}

	require.Equal(t, len(src), total)
}
