package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccount(t *testing.T) {
	account, err := GenerateAccount()
	require.NoError(t, err)

	assert.Len(t, account.Address, addressLen)
	assert.True(t, IsValidAddress(account.Address))
}

func TestAccountFromSeedIsDeterministic(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	first, err := AccountFromSeed(seed)
	require.NoError(t, err)
	second, err := AccountFromSeed(seed)
	require.NoError(t, err)

	assert.Equal(t, first.Address, second.Address)
}

func TestAccountFromSeedRejectsShortSeed(t *testing.T) {
	_, err := AccountFromSeed([]byte("too short"))
	assert.Error(t, err)
}

func TestDecodeAddressRoundtrip(t *testing.T) {
	account, err := GenerateAccount()
	require.NoError(t, err)

	pub, err := DecodeAddress(account.Address)
	require.NoError(t, err)
	assert.Equal(t, []byte(account.PublicKey), []byte(pub))
}

func TestIsValidAddressRejectsMalformed(t *testing.T) {
	account, err := GenerateAccount()
	require.NoError(t, err)

	// Flipping a character in the public key portion breaks the checksum.
	corrupted := []byte(account.Address)
	if corrupted[10] == 'A' {
		corrupted[10] = 'B'
	} else {
		corrupted[10] = 'A'
	}

	cases := map[string]string{
		"empty":          "",
		"too short":      "ABCDEF",
		"too long":       account.Address + "AAAA",
		"not base32":     strings.Repeat("0", addressLen),
		"wrong checksum": string(corrupted),
		"lowercase":      strings.ToLower(account.Address),
	}

	for name, address := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, IsValidAddress(address))
		})
	}
}
