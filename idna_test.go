// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewQueryIDNA(t *testing.T) {
	query, err := NewQueryIDNA("bücher.example", TypeA)
	require.NoError(t, err)
	require.Equal(t, "xn--bcher-kva.example", query.Name)
	require.Equal(t, uint16(TypeA), query.Type)

	raw, err := query.Pack()
	require.NoError(t, err)
	require.Len(t, raw, HeaderSize+len("xn--bcher-kva")+1+len("example")+1+1+4)
}

func TestNewQueryIDNAError(t *testing.T) {
	query, err := NewQueryIDNA("bad name.example", TypeA)
	require.Error(t, err)
	require.Nil(t, query)
}

func TestNewQueryIDNAASCIIPassthrough(t *testing.T) {
	query, err := NewQueryIDNA("www.example.com", TypeA)
	require.NoError(t, err)
	require.Equal(t, "www.example.com", query.Name)
}
