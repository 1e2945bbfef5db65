// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "encoding/binary"

// Question is the single question record carried by a query message.
type Question struct {
	// Name is the domain name being asked about, already in the
	// label-encoded form produced by [EncodeName]. This codec
	// forwards the bytes verbatim and does not re-validate them.
	Name []byte

	// Type is the record type, e.g. [TypeA].
	Type uint16

	// Class is the record class, typically [ClassIN].
	Class uint16
}

// AppendBytes appends the wire representation of the question to out
// and returns the extended slice: the encoded name followed by the
// type and class as big-endian uint16.
func (q *Question) AppendBytes(out []byte) []byte {
	out = append(out, q.Name...)
	out = binary.BigEndian.AppendUint16(out, q.Type)
	out = binary.BigEndian.AppendUint16(out, q.Class)
	return out
}

// Bytes returns the wire representation of the question.
func (q *Question) Bytes() []byte {
	return q.AppendBytes(make([]byte, 0, len(q.Name)+4))
}
