// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "encoding/binary"

// HeaderSize is the wire size of a [Header] in bytes.
const HeaderSize = 12

// Header is the fixed 12-byte header leading every DNS message.
//
// All fields are unsigned 16-bit and travel in big-endian byte
// order. The wire order is the one fixed by [*Header.AppendBytes],
// not an artifact of the field declaration order.
type Header struct {
	// ID is the transaction ID correlating a query with its response.
	ID uint16

	// Flags carries the header flag bits, e.g. [FlagRecursionDesired].
	Flags uint16

	// NumQuestions counts the records in the question section.
	NumQuestions uint16

	// NumAnswers counts the records in the answer section.
	NumAnswers uint16

	// NumAuthorities counts the records in the authority section.
	NumAuthorities uint16

	// NumAdditionals counts the records in the additional section.
	NumAdditionals uint16
}

// AppendBytes appends the 12-byte wire representation of the header
// to out and returns the extended slice. The fields are emitted in
// this fixed order: ID, Flags, NumQuestions, NumAnswers,
// NumAuthorities, NumAdditionals.
func (h *Header) AppendBytes(out []byte) []byte {
	out = binary.BigEndian.AppendUint16(out, h.ID)
	out = binary.BigEndian.AppendUint16(out, h.Flags)
	out = binary.BigEndian.AppendUint16(out, h.NumQuestions)
	out = binary.BigEndian.AppendUint16(out, h.NumAnswers)
	out = binary.BigEndian.AppendUint16(out, h.NumAuthorities)
	out = binary.BigEndian.AppendUint16(out, h.NumAdditionals)
	return out
}

// Bytes returns the 12-byte wire representation of the header.
func (h *Header) Bytes() []byte {
	return h.AppendBytes(make([]byte, 0, HeaderSize))
}
