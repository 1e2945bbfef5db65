// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderBytesFieldOrder(t *testing.T) {
	header := &Header{
		ID:             0x0102,
		Flags:          0x0304,
		NumQuestions:   0x0506,
		NumAnswers:     0x0708,
		NumAuthorities: 0x090a,
		NumAdditionals: 0x0b0c,
	}

	raw := header.Bytes()
	require.Equal(t, "0102030405060708090a0b0c", hex.EncodeToString(raw))
}

func TestHeaderBytesQueryShape(t *testing.T) {
	header := &Header{
		ID:           0x8298,
		Flags:        FlagRecursionDesired,
		NumQuestions: 1,
	}

	raw := header.Bytes()
	require.Equal(t, "829801000001000000000000", hex.EncodeToString(raw))
}

func TestHeaderBytesAlwaysTwelveBytes(t *testing.T) {
	headers := []*Header{
		{},
		{ID: 0xffff, Flags: 0xffff, NumQuestions: 0xffff,
			NumAnswers: 0xffff, NumAuthorities: 0xffff, NumAdditionals: 0xffff},
		{ID: 1},
	}
	for _, header := range headers {
		require.Len(t, header.Bytes(), HeaderSize)
	}
}

func TestHeaderAppendBytes(t *testing.T) {
	header := &Header{ID: 0xcafe, NumQuestions: 1}

	out := header.AppendBytes([]byte{0x00})
	require.Equal(t, "00cafe00000001000000000000", hex.EncodeToString(out))
}
