// ledger/account.go
package ledger

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base32"
	"fmt"
)

const (
	addressLen  = 58
	checksumLen = 4
)

var base32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

// Account is a ledger identity: an ed25519 keypair and its derived address.
// Owned exclusively by whichever component signs with it; never mutated.
type Account struct {
	Address    string
	PublicKey  ed25519.PublicKey
	privateKey ed25519.PrivateKey
}

// GenerateAccount creates a fresh account with a random keypair.
func GenerateAccount() (*Account, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return &Account{
		Address:    EncodeAddress(pub),
		PublicKey:  pub,
		privateKey: priv,
	}, nil
}

// AccountFromSeed derives a deterministic account from a 32-byte seed.
func AccountFromSeed(seed []byte) (*Account, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return &Account{
		Address:    EncodeAddress(pub),
		PublicKey:  pub,
		privateKey: priv,
	}, nil
}

// Sign signs msg with the account's private key.
func (a *Account) Sign(msg []byte) []byte {
	return ed25519.Sign(a.privateKey, msg)
}

// EncodeAddress renders a public key as the 58-character checksummed
// base32 address format used on the wire.
func EncodeAddress(pub ed25519.PublicKey) string {
	checksum := addressChecksum(pub)
	return base32NoPad.EncodeToString(append(append([]byte{}, pub...), checksum...))
}

// DecodeAddress parses a wire address back into its public key, verifying
// the checksum.
func DecodeAddress(address string) (ed25519.PublicKey, error) {
	if len(address) != addressLen {
		return nil, fmt.Errorf("address must be %d characters, got %d", addressLen, len(address))
	}
	raw, err := base32NoPad.DecodeString(address)
	if err != nil {
		return nil, fmt.Errorf("address is not valid base32: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize+checksumLen {
		return nil, fmt.Errorf("decoded address has wrong length %d", len(raw))
	}
	pub := ed25519.PublicKey(raw[:ed25519.PublicKeySize])
	want := addressChecksum(pub)
	got := raw[ed25519.PublicKeySize:]
	for i := range want {
		if want[i] != got[i] {
			return nil, fmt.Errorf("address checksum mismatch")
		}
	}
	return pub, nil
}

// IsValidAddress reports whether address is a well-formed ledger identity.
func IsValidAddress(address string) bool {
	_, err := DecodeAddress(address)
	return err == nil
}

func addressChecksum(pub ed25519.PublicKey) []byte {
	digest := sha512.Sum512_256(pub)
	return digest[len(digest)-checksumLen:]
}
