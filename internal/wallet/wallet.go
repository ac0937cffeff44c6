package wallet

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/sha3"
)

const (
	addressVersion byte = 1
	pubKeyHashLen       = 20
	checksumLen         = 4
)

// SecureHash is the chain's address hash: keccak-256 over blake2b-256.
func SecureHash(data []byte) []byte {
	inner := blake2b.Sum256(data)
	keccak := sha3.NewLegacyKeccak256()
	keccak.Write(inner[:])
	return keccak.Sum(nil)
}

// PublicKeyFromSeed derives the curve25519 public key for the wallet seed,
// using account nonce zero.
func PublicKeyFromSeed(seed string) ([]byte, error) {
	nonced := make([]byte, 0, 4+len(seed))
	nonced = binary.BigEndian.AppendUint32(nonced, 0)
	nonced = append(nonced, seed...)

	accountSeed := sha256.Sum256(SecureHash(nonced))

	priv := accountSeed
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64

	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("scalar mult: %w", err)
	}
	return pub, nil
}

// AddressFromPublicKey builds the textual address for a public key on the
// given chain scheme.
func AddressFromPublicKey(publicKey []byte, scheme byte) string {
	body := make([]byte, 0, 2+pubKeyHashLen+checksumLen)
	body = append(body, addressVersion, scheme)
	body = append(body, SecureHash(publicKey)[:pubKeyHashLen]...)
	body = append(body, SecureHash(body)[:checksumLen]...)
	return base58.Encode(body)
}

// AddressFromSeed derives the wallet address controlled by the seed. Used at
// startup to verify the node wallet matches the configured merchant address.
func AddressFromSeed(seed string, scheme byte) (string, error) {
	pub, err := PublicKeyFromSeed(seed)
	if err != nil {
		return "", err
	}
	return AddressFromPublicKey(pub, scheme), nil
}

// SchemeOf extracts the chain scheme byte from a textual address.
func SchemeOf(address string) (byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return 0, fmt.Errorf("decode address: %w", err)
	}
	if len(raw) < 2 {
		return 0, fmt.Errorf("address too short")
	}
	return raw[1], nil
}

// VerifyAddress checks the structural integrity of a textual address: version
// byte, scheme and checksum.
func VerifyAddress(address string, scheme byte) error {
	raw, err := base58.Decode(address)
	if err != nil {
		return fmt.Errorf("decode address: %w", err)
	}
	if len(raw) != 2+pubKeyHashLen+checksumLen {
		return fmt.Errorf("address length %d is not %d", len(raw), 2+pubKeyHashLen+checksumLen)
	}
	if raw[0] != addressVersion {
		return fmt.Errorf("unknown address version %d", raw[0])
	}
	if raw[1] != scheme {
		return fmt.Errorf("address scheme %q does not match %q", raw[1], scheme)
	}
	body := raw[:len(raw)-checksumLen]
	sum := SecureHash(body)[:checksumLen]
	for i, b := range sum {
		if raw[len(body)+i] != b {
			return fmt.Errorf("address checksum mismatch")
		}
	}
	return nil
}
