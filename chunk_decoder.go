// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzf

// ChunkDecoder is the LZF decompression kernel. It holds no mutable
// state and is safe to share across goroutines.
type ChunkDecoder struct{}

// NewChunkDecoder returns a stateless ChunkDecoder.
func NewChunkDecoder() *ChunkDecoder {
	return &ChunkDecoder{}
}

// Decode decodes a full stream of one or more concatenated framed chunks
// and returns the original bytes. It walks the stream twice: once to
// validate headers and compute the exact output size (summing declared
// uncompressed lengths), and once to expand each chunk into the result.
// It fails with a *CorruptInputError identifying the offending chunk
// index and byte offset on any malformed input.
func (d *ChunkDecoder) Decode(framed []byte) ([]byte, error) {
	total, err := sizeStream(framed)
	if err != nil {
		return nil, err
	}

	out := make([]byte, total)
	if err := expandStream(framed, out); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeChunk decodes exactly one framed chunk into scratch and returns
// the populated prefix. scratch must be at least as large as the
// chunk's declared uncompressed length (or payload length, for an
// uncompressed chunk).
func (d *ChunkDecoder) DecodeChunk(framed, scratch []byte) ([]byte, error) {
	out, _, err := d.DecodeChunkN(framed, scratch)
	return out, err
}

// DecodeChunkN decodes exactly one framed chunk at the start of framed
// into scratch, and additionally returns the number of input bytes
// consumed — the start offset of the next chunk, for callers walking a
// stream chunk-by-chunk (e.g. back-to-back framed blocks from a caller
// that already knows chunk boundaries some other way).
func (d *ChunkDecoder) DecodeChunkN(framed, scratch []byte) ([]byte, int, error) {
	hdr, err := parseHeader(framed, 0)
	if err != nil {
		return nil, 0, err
	}

	if len(scratch) < hdr.uncompressedLen {
		return nil, 0, corruptInput(0, 0, ErrLengthOverflow)
	}

	dst := scratch[:hdr.uncompressedLen]

	if hdr.blockType == blockTypeUncompressed {
		copy(dst, framed[hdr.headerLen:hdr.headerLen+hdr.payloadLen])
		return dst, hdr.headerLen + hdr.payloadLen, nil
	}

	payload := framed[hdr.headerLen : hdr.headerLen+hdr.payloadLen]
	if err := expandChunk(payload, dst); err != nil {
		return nil, 0, corruptInput(0, hdr.headerLen, err)
	}

	return dst, hdr.headerLen + hdr.payloadLen, nil
}

// chunkHeader is the parsed form of one chunk's header fields.
type chunkHeader struct {
	blockType       byte
	headerLen       int
	payloadLen      int
	uncompressedLen int // equals payloadLen for an uncompressed chunk
}

// parseHeader validates and parses the chunk header at framed[pos:], per
// spec.md §3's invariants, returning a *CorruptInputError (with the
// chunk's own offset) on any violation.
func parseHeader(framed []byte, pos int) (chunkHeader, error) {
	if pos+headerLenUncompressed > len(framed) {
		return chunkHeader{}, corruptInput(0, pos, ErrTruncatedHeader)
	}

	if framed[pos] != magicZ || framed[pos+1] != magicV {
		return chunkHeader{}, corruptInput(0, pos, ErrBadMagic)
	}

	blockType := framed[pos+2]
	if blockType != blockTypeUncompressed && blockType != blockTypeCompressed {
		return chunkHeader{}, corruptInput(0, pos, ErrBadBlockType)
	}

	payloadLen := getBE16(framed[pos+3 : pos+5])

	if blockType == blockTypeUncompressed {
		if pos+headerLenUncompressed+payloadLen > len(framed) {
			return chunkHeader{}, corruptInput(0, pos, ErrTruncatedHeader)
		}

		return chunkHeader{
			blockType:       blockType,
			headerLen:       headerLenUncompressed,
			payloadLen:      payloadLen,
			uncompressedLen: payloadLen,
		}, nil
	}

	if pos+headerLenCompressed > len(framed) {
		return chunkHeader{}, corruptInput(0, pos, ErrTruncatedHeader)
	}

	uncompressedLen := getBE16(framed[pos+5 : pos+7])

	if pos+headerLenCompressed+payloadLen > len(framed) {
		return chunkHeader{}, corruptInput(0, pos, ErrTruncatedHeader)
	}

	return chunkHeader{
		blockType:       blockType,
		headerLen:       headerLenCompressed,
		payloadLen:      payloadLen,
		uncompressedLen: uncompressedLen,
	}, nil
}

// sizeStream walks framed once, validating every chunk header and
// summing declared uncompressed lengths. It tolerates exactly one
// trailing zero byte after the final chunk (the legacy end-marker) and
// fails with a *CorruptInputError on any other deviation.
func sizeStream(framed []byte) (int, error) {
	pos := 0
	index := 0
	total := 0

	for pos < len(framed) {
		if len(framed)-pos == 1 && framed[pos] == 0 {
			pos++
			break
		}

		hdr, err := parseHeader(framed, pos)
		if err != nil {
			return 0, reindex(err, index)
		}

		next := total + hdr.uncompressedLen
		if next < total {
			return 0, corruptInput(index, pos, ErrLengthOverflow)
		}

		total = next
		pos += hdr.headerLen + hdr.payloadLen
		index++
	}

	if pos != len(framed) {
		return 0, corruptInput(index, pos, ErrTrailingBytes)
	}

	return total, nil
}

// expandStream walks framed once more, copying uncompressed payloads
// verbatim and expanding compressed payloads into out at the running
// write cursor. sizeStream must have already validated framed.
func expandStream(framed, out []byte) error {
	pos := 0
	index := 0
	outPos := 0

	for pos < len(framed) {
		if len(framed)-pos == 1 && framed[pos] == 0 {
			break
		}

		hdr, err := parseHeader(framed, pos)
		if err != nil {
			return reindex(err, index)
		}

		payloadStart := pos + hdr.headerLen

		if hdr.blockType == blockTypeUncompressed {
			copy(out[outPos:outPos+hdr.payloadLen], framed[payloadStart:payloadStart+hdr.payloadLen])
			outPos += hdr.payloadLen
		} else {
			payload := framed[payloadStart : payloadStart+hdr.payloadLen]
			dst := out[outPos : outPos+hdr.uncompressedLen]

			if err := expandChunk(payload, dst); err != nil {
				return corruptInput(index, payloadStart, err)
			}

			outPos += hdr.uncompressedLen
		}

		pos += hdr.headerLen + hdr.payloadLen
		index++
	}

	return nil
}

// reindex rewrites a *CorruptInputError's chunk index (parseHeader
// always reports index 0, since it walks a single header in isolation).
func reindex(err error, index int) error {
	var cie *CorruptInputError
	if e, ok := err.(*CorruptInputError); ok {
		cie = e
	} else {
		return err
	}

	return corruptInput(index, cie.Offset, cie.Err)
}

// expandChunk runs the back-reference expansion loop over one
// compressed chunk's payload, writing exactly len(output) bytes. This is
// spec.md §4.3's inner loop: each control byte is either a literal run
// (ctrl < MAX_LITERAL) or a back-reference (len/high packed into ctrl,
// with an optional length-extension byte).
func expandChunk(payload, output []byte) error {
	inPos := 0
	outPos := 0
	outEnd := len(output)

	for outPos < outEnd {
		if inPos >= len(payload) {
			return ErrChunkUnderrun
		}

		ctrl := payload[inPos]
		inPos++

		if ctrl < maxLiteral {
			n := int(ctrl) + 1
			if inPos+n > len(payload) {
				return ErrChunkUnderrun
			}

			if outPos+n > outEnd {
				return ErrChunkOverrun
			}

			copy(output[outPos:outPos+n], payload[inPos:inPos+n])
			inPos += n
			outPos += n

			continue
		}

		lenField := int(ctrl) >> 5
		high := int(ctrl) & 0x1F

		var matchLen, dist int

		if lenField < 7 {
			if inPos >= len(payload) {
				return ErrChunkUnderrun
			}

			b := payload[inPos]
			inPos++

			dist = (high << 8) + int(b) + 1
			matchLen = lenField + 2
		} else {
			if inPos+1 >= len(payload) {
				return ErrChunkUnderrun
			}

			ext := payload[inPos]
			b := payload[inPos+1]
			inPos += 2

			dist = (high << 8) + int(b) + 1
			matchLen = int(ext) + 9
		}

		if err := copyBackRef(output, outPos, dist, matchLen); err != nil {
			return err
		}

		outPos += matchLen
	}

	if inPos != len(payload) {
		return ErrTrailingChunkBytes
	}

	return nil
}
