// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"golang.org/x/net/idna"
)

// NewQueryIDNA constructs a new [*Query] for a possibly
// internationalized domain name.
//
// The name is converted to its punycode ASCII form with the IDNA
// rules for lookup before the query is built; the core encoder
// itself only accepts ASCII names. The returned query has a
// randomized ID like with [NewQuery].
func NewQueryIDNA(name string, qtype uint16) (*Query, error) {
	punyName, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return nil, err
	}
	return NewQuery(punyName, qtype), nil
}
