// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package lzf implements the LZF compression format: a streaming,
byte-oriented LZ77-family codec wire-compatible with liblzf and
compress-lzf's chunked "ZV" stream layout.

The stream is a sequence of framed chunks, each either an uncompressed
block or a compressed block. Compressed blocks use a literal-run /
back-reference control-byte encoding; uncompressed blocks carry the
input bytes verbatim. Chunks are strictly independent — no
back-reference crosses a chunk boundary — so a stream can be produced
and consumed one MAX_CHUNK_LENGTH-sized window at a time.

# Encode / Decode

The façade functions split arbitrary-length input into chunks and
concatenate the framed output:

	framed, err := lzf.Encode(data)
	out, err := lzf.Decode(framed)

# Chunk-level control

For callers that want to drive the chunk encoder or decoder directly
(e.g. to reuse hash-table state across many same-sized chunks):

	enc := lzf.NewChunkEncoder(len(data))
	chunk, err := enc.Encode(data, 0, len(data))

	dec := lzf.NewChunkDecoder()
	out, err := dec.DecodeChunk(chunk, make([]byte, expectedLen))
*/
package lzf
