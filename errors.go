// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzf

import (
	"errors"
	"fmt"
)

// Sentinel errors for encoding and decoding. Encoding failures are caller
// precondition violations (InvalidArgument); decoding failures wrap one of
// the CorruptInput-class sentinels below in a *CorruptInputError that adds
// block-index and byte-offset context.
var (
	// ErrPayloadTooLarge is returned when a chunk payload exceeds MAX_CHUNK_LENGTH.
	ErrPayloadTooLarge = errors.New("payload exceeds MAX_CHUNK_LENGTH")
	// ErrOffsetOutOfRange is returned when an encode range falls outside the input slice.
	ErrOffsetOutOfRange = errors.New("offset/length out of range")
	// ErrDestinationTooSmall is returned when CopyTo's destination cannot hold the chunk.
	ErrDestinationTooSmall = errors.New("destination buffer too small")

	// ErrBadMagic is returned when a chunk's first two bytes are not {0x5A, 0x56}.
	ErrBadMagic = errors.New("bad magic bytes")
	// ErrBadBlockType is returned when a chunk's block-type byte is neither 0 nor 1.
	ErrBadBlockType = errors.New("bad block type")
	// ErrTruncatedHeader is returned when a chunk header runs past the end of input.
	ErrTruncatedHeader = errors.New("truncated chunk header")
	// ErrLengthOverflow is returned when the declared uncompressed total would overflow the output buffer.
	ErrLengthOverflow = errors.New("declared length overflows output buffer")
	// ErrTrailingBytes marks bytes left after the final chunk other than one end-marker zero. Decode parses
	// such bytes as the start of another chunk, so they are reported as ErrTruncatedHeader or ErrBadMagic.
	ErrTrailingBytes = errors.New("trailing bytes after final chunk")
	// ErrChunkOverrun is returned when a compressed chunk's expansion would write past its declared length.
	ErrChunkOverrun = errors.New("chunk expansion overruns declared length")
	// ErrChunkUnderrun is returned when a compressed chunk's expansion stops short of its declared length.
	ErrChunkUnderrun = errors.New("chunk expansion underruns declared length")
	// ErrBackrefUnderflow is returned when a back-reference points before the start of the output.
	ErrBackrefUnderflow = errors.New("back-reference points before output start")
	// ErrTrailingChunkBytes is returned when a chunk's payload has unconsumed bytes after its declared uncompressed length is reached.
	ErrTrailingChunkBytes = errors.New("chunk payload has trailing bytes")
)

// CorruptInputError reports a malformed framed stream, identifying the
// offending chunk index and the byte offset within the stream at which
// the problem was detected. Unwrap returns one of the CorruptInput-class
// sentinels above, so callers can still use errors.Is(err, lzf.ErrBadMagic).
type CorruptInputError struct {
	Index  int   // zero-based index of the offending chunk
	Offset int   // byte offset within the stream where the problem was found
	Err    error // one of the CorruptInput-class sentinels
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("lzf: corrupt input at chunk %d, offset %d: %v", e.Index, e.Offset, e.Err)
}

func (e *CorruptInputError) Unwrap() error {
	return e.Err
}

// corruptInput constructs a *CorruptInputError for the given chunk index and byte offset.
func corruptInput(index, offset int, err error) error {
	return &CorruptInputError{Index: index, Offset: offset, Err: err}
}
