// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzf

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// regressionVectorHex is spec.md §8 scenario S3's literal encoder output,
// pinned here as a wire-format regression anchor: if the control-byte
// layout or header packing ever shifts, this test catches it even when the
// round-trip properties alone would not (a bug that affects encode and
// decode symmetrically can pass round-trip while producing a wire format no
// other implementation can read).
const regressionVectorHex = "5a5601001300170b010009010161626364000009e00006016364"

func TestDecode_RegressionVector(t *testing.T) {
	src, err := hex.DecodeString(regressionVectorHex)
	require.NoError(t, err)

	want := []byte{1, 0, 9, 1, 1, 97, 98, 99, 100, 0, 0, 9, 97, 98, 99, 100, 0, 0, 9, 97, 98, 99, 100}

	out, err := Decode(src)
	require.NoError(t, err)
	require.Equal(t, want, out)

	gotHash := sha256.Sum256(out)
	wantHash := sha256.Sum256(want)
	require.Equal(t, hex.EncodeToString(wantHash[:]), hex.EncodeToString(gotHash[:]))
}
