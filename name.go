// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"errors"
	"fmt"
	"strings"
)

// Errors emitted when encoding a domain name.
var (
	// ErrEncode is the umbrella error matched by every
	// encoding error returned by this package.
	ErrEncode = errors.New("dnswire: cannot encode")

	// ErrNameNotASCII means the domain name contains non-ASCII bytes.
	ErrNameNotASCII = fmt.Errorf("%w: domain name is not ASCII", ErrEncode)

	// ErrLabelEmpty means the domain name contains an empty interior label.
	ErrLabelEmpty = fmt.Errorf("%w: empty label in domain name", ErrEncode)

	// ErrLabelTooLong means a label exceeds 63 bytes.
	ErrLabelTooLong = fmt.Errorf("%w: label longer than 63 bytes", ErrEncode)

	// ErrNameTooLong means the encoded name exceeds 255 bytes.
	ErrNameTooLong = fmt.Errorf("%w: name longer than 255 bytes", ErrEncode)
)

// RFC 1035 section 2.3.4 size limits.
const (
	maxLabelSize = 63
	maxNameSize  = 255
)

// EncodeName encodes an ASCII domain name as a sequence of
// length-prefixed labels terminated by a zero byte.
//
// Each dot-separated part of the name becomes one length byte
// followed by the part's raw bytes. A single trailing dot marks a
// fully-qualified name and merges with the terminating zero byte,
// so "example.com" and "example.com." encode identically. The empty
// name and "." both encode to the bare root, a single zero byte.
//
// The name must be ASCII: use [NewQueryIDNA] to build queries for
// internationalized names. Labels over 63 bytes, names whose encoding
// exceeds 255 bytes, and empty interior labels are rejected. All
// returned errors match [ErrEncode].
func EncodeName(name string) ([]byte, error) {
	return AppendName(nil, name)
}

// AppendName appends the encoding of name to out as documented
// by [EncodeName] and returns the extended slice.
func AppendName(out []byte, name string) ([]byte, error) {
	// Normalize the FQDN trailing dot so we never emit a
	// zero-length label before the terminator.
	name = strings.TrimSuffix(name, ".")

	start := len(out)
	if name != "" {
		for part := range strings.SplitSeq(name, ".") {
			if part == "" {
				return nil, ErrLabelEmpty
			}
			if len(part) > maxLabelSize {
				return nil, ErrLabelTooLong
			}
			for i := 0; i < len(part); i++ {
				if part[i] >= 0x80 {
					return nil, ErrNameNotASCII
				}
			}
			out = append(out, byte(len(part)))
			out = append(out, part...)
		}
	}
	out = append(out, 0)
	if len(out)-start > maxNameSize {
		return nil, ErrNameTooLong
	}
	return out, nil
}
