// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzf

import "sync"

// Encode compresses data into a sequence of back-to-back framed chunks.
// Inputs up to MAX_CHUNK_LENGTH bytes produce a single chunk; longer
// inputs are cut into consecutive MAX_CHUNK_LENGTH-sized windows (the
// last possibly smaller), each encoded independently — chunks never
// share back-references across their boundary.
func Encode(data []byte) ([]byte, error) {
	if len(data) <= maxChunkLength {
		enc := acquireStreamEncoder(len(data))
		defer releaseStreamEncoder(enc)

		return enc.Encode(data, 0, len(data))
	}

	chunkCount := (len(data) + maxChunkLength - 1) / maxChunkLength
	out := make([]byte, 0, len(data)+chunkCount*headerLenCompressed)

	enc := acquireStreamEncoder(maxChunkLength)
	defer releaseStreamEncoder(enc)

	for offset := 0; offset < len(data); offset += maxChunkLength {
		n := maxChunkLength
		if remaining := len(data) - offset; n > remaining {
			n = remaining
		}

		chunk, err := enc.Encode(data, offset, n)
		if err != nil {
			return nil, err
		}

		out = append(out, chunk...)
	}

	return out, nil
}

// Decode decodes a full stream of concatenated framed chunks, produced
// by Encode or any wire-compatible LZF encoder, and returns the original
// bytes.
func Decode(framed []byte) ([]byte, error) {
	return NewChunkDecoder().Decode(framed)
}

// streamEncoderPool pools *ChunkEncoder instances for Encode's internal,
// one-shot use: Encode has no caller-visible encoder handle to reuse
// across calls the way a caller-held *ChunkEncoder would, so it pools
// its own. Grounded on the teacher's slidingWindowDict pool
// (sliding_window_pool.go) — same "reuse a mutable scratch structure
// across calls" concern, repurposed for a hash table instead of a
// sliding-window dictionary.
var streamEncoderPool = sync.Pool{
	New: func() any {
		return NewChunkEncoder(maxChunkLength)
	},
}

func acquireStreamEncoder(expectedLength int) *ChunkEncoder {
	enc := streamEncoderPool.Get().(*ChunkEncoder)
	if cap(enc.scratch) < scratchSize(expectedLength) {
		enc.scratch = make([]byte, scratchSize(expectedLength))
	}

	return enc
}

func releaseStreamEncoder(enc *ChunkEncoder) {
	streamEncoderPool.Put(enc)
}
