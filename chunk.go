// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzf

// Chunk constructs and recognizes framed LZF chunks: a 5-byte
// (uncompressed) or 7-byte (compressed) big-endian header followed by a
// payload. See the package doc for the stream layout.

// Uncompressed returns a framed chunk wrapping payload verbatim. It fails
// with ErrPayloadTooLarge if len(payload) > MAX_CHUNK_LENGTH.
func Uncompressed(payload []byte) ([]byte, error) {
	if len(payload) > maxChunkLength {
		return nil, ErrPayloadTooLarge
	}

	out := make([]byte, headerLenUncompressed+len(payload))
	out[0] = magicZ
	out[1] = magicV
	out[2] = blockTypeUncompressed
	putBE16(out[3:5], len(payload))
	copy(out[headerLenUncompressed:], payload)

	return out, nil
}

// Compressed returns a framed chunk wrapping a compressed payload along
// with the uncompressed length the decoder must produce. It fails with
// ErrPayloadTooLarge if len(payload) > MAX_CHUNK_LENGTH.
func Compressed(payload []byte, uncompressedLen int) ([]byte, error) {
	if len(payload) > maxChunkLength {
		return nil, ErrPayloadTooLarge
	}

	out := make([]byte, headerLenCompressed+len(payload))
	out[0] = magicZ
	out[1] = magicV
	out[2] = blockTypeCompressed
	putBE16(out[3:5], len(payload))
	putBE16(out[5:7], uncompressedLen)
	copy(out[headerLenCompressed:], payload)

	return out, nil
}

// IsValidChunk reports whether b begins with a well-formed chunk header:
// at least 5 bytes, magic bytes {0x5A, 0x56}, and a block-type byte of 0
// or 1. It does not verify interior consistency (declared lengths,
// payload size, or trailing data).
func IsValidChunk(b []byte) bool {
	if len(b) < headerLenUncompressed {
		return false
	}

	if b[0] != magicZ || b[1] != magicV {
		return false
	}

	return b[2] == blockTypeUncompressed || b[2] == blockTypeCompressed
}

// CopyTo copies all of chunk into dst starting at offset, and returns the
// new offset (offset + len(chunk)). It fails with ErrDestinationTooSmall
// if dst cannot hold the chunk at that offset.
func CopyTo(chunk, dst []byte, offset int) (int, error) {
	if offset < 0 || offset+len(chunk) > len(dst) {
		return offset, ErrDestinationTooSmall
	}

	copy(dst[offset:offset+len(chunk)], chunk)

	return offset + len(chunk), nil
}

// putBE16 writes the low 16 bits of v into b (len(b) == 2) big-endian.
func putBE16(b []byte, v int) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// getBE16 reads a big-endian uint16 from b (len(b) >= 2).
func getBE16(b []byte) int {
	return int(b[0])<<8 | int(b[1])
}
