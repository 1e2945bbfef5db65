// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnswire serializes outbound DNS query messages.
//
// [BuildQuery] and [*Builder] construct a complete query message in
// RFC 1035 wire format (12-byte header plus question section), ready
// to hand to a transport sending over UDP. [EncodeName], [*Header],
// and [*Question] expose the lower-level encoders.
//
// Unlike [github.com/miekg/dns], this package implements its own
// serializer for the query side of the protocol. We still use miekg's
// [dns.Id] as the default transaction-ID source, and the tests use
// miekg as an independent oracle for the produced bytes.
package dnswire
