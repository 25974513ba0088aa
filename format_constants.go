// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzf

// LZF format constants: magic bytes, block types, header sizes, and
// match/literal/chunk bounds.

// Magic bytes introducing every chunk.
const (
	magicZ = 0x5A
	magicV = 0x56
)

// Block type byte (header offset 2).
const (
	blockTypeUncompressed = 0
	blockTypeCompressed   = 1
)

// Header sizes in bytes.
const (
	headerLenUncompressed = 5 // magic(2) + type(1) + payloadLen(2)
	headerLenCompressed   = 7 // magic(2) + type(1) + payloadLen(2) + uncompressedLen(2)
)

// Chunk and literal-run bounds.
const (
	maxChunkLength     = 65535 // MAX_CHUNK_LENGTH
	minBlockToCompress = 16    // below this, encode() always returns uncompressed
	maxLiteral         = 32    // MAX_LITERAL: longest literal run per control byte
	tailLength         = 4     // bytes reserved at the end of input for tail handling
)

// Match (back-reference) bounds.
const (
	maxOff = 1 << 13             // MAX_OFF: 8192
	maxRef = (1 << 8) + (1 << 3) // MAX_REF: 264
)
