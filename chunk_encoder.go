// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzf

// ChunkEncoder is the LZF compression kernel. It owns a reusable rolling
// hash table and scratch output buffer, sized for a given expected chunk
// length, and compresses one input range at a time via Encode.
//
// A ChunkEncoder is not safe for concurrent use across goroutines;
// independent encoders may run in parallel.
type ChunkEncoder struct {
	hashTable []int32 // absolute positions into the current Encode call's input; stale across calls
	hashMask  int32
	scratch   []byte
}

// NewChunkEncoder returns a ChunkEncoder sized for chunks around
// expectedLength bytes. The encoder may be reused across chunks of
// varying sizes; its scratch buffer grows on demand and its hash table
// size only affects compression ratio, never correctness.
func NewChunkEncoder(expectedLength int) *ChunkEncoder {
	size := hashTableSize(expectedLength)

	return &ChunkEncoder{
		hashTable: make([]int32, size),
		hashMask:  int32(size - 1),
		scratch:   make([]byte, scratchSize(expectedLength)),
	}
}

// hashTableSize picks the smallest power of two >= 2*expectedLength,
// clamped to [256, 16384], per spec.md §3's encoder state sizing rule.
func hashTableSize(expectedLength int) int {
	size := 256
	for size < 16384 && size < 2*expectedLength {
		size <<= 1
	}

	return size
}

// scratchSize returns the worst-case expansion buffer size for a chunk of
// n bytes: n + ceil(n/32) + 7 (header slack).
func scratchSize(n int) int {
	if n < 0 {
		n = 0
	}

	return n + (n+31)/32 + 7
}

// Encode reads length bytes starting at offset from input and returns a
// framed chunk. If length < MIN_BLOCK_TO_COMPRESS, the result is always
// uncompressed. Otherwise compression is attempted; unless the compressed
// payload is shorter than length-2 (at least 3 bytes smaller than the
// input), the result falls back to uncompressed. Encode fails
// with ErrOffsetOutOfRange or ErrPayloadTooLarge on a precondition
// violation, before any output is allocated.
func (c *ChunkEncoder) Encode(input []byte, offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(input) {
		return nil, ErrOffsetOutOfRange
	}

	if length > maxChunkLength {
		return nil, ErrPayloadTooLarge
	}

	in := input[offset : offset+length]

	if length < minBlockToCompress {
		return Uncompressed(in)
	}

	payload := c.compress(in)
	if len(payload) < length-2 {
		return Compressed(payload, length)
	}

	return Uncompressed(in)
}

// hashOf folds a 3-byte sequence into a hash-table slot, per spec.md
// §4.2: h = (b0<<16)|(b1<<8)|b2; slot = ((h*57321)>>9) & hash_modulo.
func (c *ChunkEncoder) hashOf(b0, b1, b2 byte) int32 {
	h := int32(b0)<<16 | int32(b1)<<8 | int32(b2)

	return ((h * 57321) >> 9) & c.hashMask
}

// compress runs the hash-accelerated LZF parse over in and returns the
// control-byte-encoded payload (literal runs and back-references). The
// returned slice aliases c.scratch and is only valid until the next call
// to compress.
func (c *ChunkEncoder) compress(in []byte) []byte {
	need := scratchSize(len(in))
	if cap(c.scratch) < need {
		c.scratch = make([]byte, need)
	}

	out := c.scratch[:0]
	inEnd := len(in)

	lit := literalRun{}
	out, lit = lit.reserve(out)

	inputPosition := 0
	limit := inEnd - tailLength

	for inputPosition < limit {
		b0, b1, b2 := in[inputPosition], in[inputPosition+1], in[inputPosition+2]
		slot := c.hashOf(b0, b1, b2)
		ref := int(c.hashTable[slot])
		c.hashTable[slot] = int32(inputPosition)

		valid := ref < inputPosition &&
			ref >= 0 &&
			inputPosition-ref <= maxOff &&
			in[ref] == b0 && in[ref+1] == b1 && in[ref+2] == b2

		if !valid {
			out, lit = lit.emit(out, b0)
			inputPosition++

			continue
		}

		matchLen := extendMatch(in, ref, inputPosition, inEnd)
		off := inputPosition - ref - 1

		out, lit = lit.commit(out)
		out = emitMatch(out, off, matchLen)

		inputPosition += matchLen
		out, lit = lit.reserve(out)

		primeHashTable(c, in, inputPosition, inEnd)
	}

	for inputPosition < inEnd {
		out, lit = lit.emit(out, in[inputPosition])
		inputPosition++
	}

	out = lit.finish(out)

	return out
}

// extendMatch returns the matched run length starting at (ref, pos),
// given the first 3 bytes already verified equal. The result is capped
// by MAX_REF and leaves at least 2 trailing bytes unconsumed so the
// post-match hash-priming step (primeHashTable) never reads past inEnd;
// those trailing bytes fall out as a literal tail instead.
func extendMatch(in []byte, ref, pos, inEnd int) int {
	maxLen := inEnd - pos - 2
	if maxLen > maxRef {
		maxLen = maxRef
	}

	k := 3
	for k < maxLen && in[ref+k] == in[pos+k] {
		k++
	}

	return k
}

// primeHashTable records hash-table entries for the two input positions
// immediately following a match, per spec.md §4.2, to seed the next
// iterations' searches. This is a compression-ratio heuristic; it has no
// bearing on decode correctness.
func primeHashTable(c *ChunkEncoder, in []byte, pos, inEnd int) {
	if pos+2 < inEnd {
		c.hashTable[c.hashOf(in[pos], in[pos+1], in[pos+2])] = int32(pos)
	}

	if pos+3 < inEnd {
		c.hashTable[c.hashOf(in[pos+1], in[pos+2], in[pos+3])] = int32(pos + 1)
	}
}
