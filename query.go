// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "github.com/miekg/dns"

// FlagRecursionDesired is the RD bit in the header flags field. Every
// query built by this package sets it and leaves all other bits clear.
const FlagRecursionDesired = 0x0100

// ClassIN is the Internet record class.
const ClassIN = 1

// Common query types, with the values assigned by RFC 1035 and
// RFC 3596. Any other uint16 value is passed through verbatim.
const (
	TypeA     = 1
	TypeNS    = 2
	TypeCNAME = 5
	TypeMX    = 15
	TypeTXT   = 16
	TypeAAAA  = 28
)

// Query is a DNS query.
//
// Construct using [NewQuery] or set the MANDATORY fields.
type Query struct {
	// Name is the MANDATORY domain name to query.
	Name string

	// Type is the query type.
	Type uint16

	// ID is the OPTIONAL transaction ID.
	ID uint16
}

// NewQuery constructs a new [*Query] with safe defaults.
//
// By default, the query uses a randomized ID obtained from [dns.Id].
func NewQuery(name string, qtype uint16) *Query {
	return &Query{
		Name: name,
		Type: qtype,
		ID:   dns.Id(),
	}
}

// Clone returns a deep copy of the query.
func (q *Query) Clone() *Query {
	return &Query{
		Name: q.Name,
		Type: q.Type,
		ID:   q.ID,
	}
}

// Pack serializes the query into wire format.
//
// The result is the 12-byte header immediately followed by the
// question section, with no separators: exactly 12 + len(encoded
// name) + 4 bytes. The header requests recursion and declares one
// question and zero answer, authority, and additional records.
//
// Pack fails only when [EncodeName] rejects the domain name; the
// returned error matches [ErrEncode]. Packing is deterministic:
// the same query yields the same bytes.
func (q *Query) Pack() ([]byte, error) {
	name, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	header := &Header{
		ID:           q.ID,
		Flags:        FlagRecursionDesired,
		NumQuestions: 1,
	}
	question := &Question{
		Name:  name,
		Type:  q.Type,
		Class: ClassIN,
	}
	out := make([]byte, 0, HeaderSize+len(name)+4)
	out = header.AppendBytes(out)
	out = question.AppendBytes(out)
	return out, nil
}

// IDSource yields 16-bit transaction identifiers.
//
// An IDSource must be safe for concurrent use when queries are
// built concurrently. [dns.Id] satisfies this contract.
type IDSource func() uint16

// Builder builds query messages with an explicit ID source, which
// enables deterministic tests without touching global RNG state.
//
// The zero value is ready to use and draws IDs from [dns.Id].
type Builder struct {
	// NewID is the OPTIONAL transaction-ID source.
	NewID IDSource
}

// Build encodes name, draws a transaction ID from the configured
// source, and returns the packed query message for the given type.
func (b *Builder) Build(name string, qtype uint16) ([]byte, error) {
	newID := b.NewID
	if newID == nil {
		newID = dns.Id
	}
	query := &Query{Name: name, Type: qtype, ID: newID()}
	return query.Pack()
}

// BuildQuery returns the packed query message for the given domain
// name and record type, with a transaction ID from [dns.Id].
func BuildQuery(name string, qtype uint16) ([]byte, error) {
	builder := &Builder{}
	return builder.Build(name, qtype)
}
