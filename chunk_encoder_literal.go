// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzf

// literalRun tracks the in-progress literal run while compress walks the
// input: a reserved control-byte slot in out, and a count of bytes
// emitted into that run so far. Every byte position reserves a slot up
// front (spec.md §4.2) so a match can retract it without a second pass.
type literalRun struct {
	slot  int // index of the reserved control byte in out
	count int // literal bytes emitted since the slot was reserved
}

// reserve appends a placeholder control byte and starts tracking a new
// (empty) literal run at it.
func (lit literalRun) reserve(out []byte) ([]byte, literalRun) {
	out = append(out, 0)

	return out, literalRun{slot: len(out) - 1, count: 0}
}

// emit appends one literal byte to the current run. If the run reaches
// MAX_LITERAL (32) bytes, it is committed and a new slot is reserved.
func (lit literalRun) emit(out []byte, b byte) ([]byte, literalRun) {
	out = append(out, b)
	lit.count++

	if lit.count == maxLiteral {
		out[lit.slot] = byte(lit.count - 1)
		out, lit = lit.reserve(out)
	}

	return out, lit
}

// commit finalizes the current run before a back-reference is emitted:
// writes the control byte if any literals were accumulated, or retracts
// the unused reserved slot if the run is empty.
func (lit literalRun) commit(out []byte) ([]byte, literalRun) {
	if lit.count > 0 {
		out[lit.slot] = byte(lit.count - 1)

		return out, lit
	}

	return out[:lit.slot], lit
}

// finish is commit's counterpart at end of input: it writes the final
// control byte, or retracts the reserved slot if the input ended exactly
// on a run boundary.
func (lit literalRun) finish(out []byte) []byte {
	if lit.count > 0 {
		out[lit.slot] = byte(lit.count - 1)

		return out
	}

	return out[:lit.slot]
}

// emitMatch appends the short or long back-reference encoding for a
// match of the given length (3..MAX_REF) and offset (0..MAX_OFF-1) to
// out, per spec.md §4.2.
func emitMatch(out []byte, off, length int) []byte {
	runLen := length - 2

	if runLen <= 6 {
		return append(out,
			byte(((off>>8)|(runLen<<5))&0xFF),
			byte(off&0xFF),
		)
	}

	return append(out,
		byte((off>>8)|(7<<5)),
		byte(runLen-7),
		byte(off&0xFF),
	)
}
