// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	sealedSaltLen  = 16
	sealedNonceLen = 12
	sealedKeyLen   = 32
)

// ErrSealedPayloadTooShort is returned when a payload is shorter than the
// salt and nonce prefix it must carry.
var ErrSealedPayloadTooShort = errors.New("sealed payload too short")

// SealedCodec seals payloads with AES-256-GCM under a key derived from a
// passphrase via Argon2id. Each payload carries its own salt and nonce:
// blob = salt ‖ nonce ‖ ciphertext, base64-encoded.
type SealedCodec struct {
	passphrase []byte

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewSealedCodec constructs a [SealedCodec] with the Argon2id parameters
// recommended by OWASP (2024): 1 iteration, 64 MiB memory, 4 threads,
// 256-bit key.
func NewSealedCodec(passphrase string) *SealedCodec {
	return &SealedCodec{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
	}
}

func (c *SealedCodec) deriveKey(salt []byte) []byte {
	return argon2.IDKey(c.passphrase, salt, c.argonTime, c.argonMemory, c.argonThreads, sealedKeyLen)
}

// Encode implements [Codec]. It derives a fresh key from a random salt,
// seals source with AES-256-GCM under a random nonce, and returns the
// base64-encoded salt ‖ nonce ‖ ciphertext blob.
func (c *SealedCodec) Encode(source string) (string, error) {
	salt := make([]byte, sealedSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate seal salt: %w", err)
	}

	block, err := aes.NewCipher(c.deriveKey(salt))
	if err != nil {
		return "", fmt.Errorf("create seal cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create seal gcm: %w", err)
	}

	nonce := make([]byte, sealedNonceLen)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate seal nonce: %w", err)
	}

	blob := make([]byte, 0, sealedSaltLen+sealedNonceLen+len(source)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(source), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decode implements [Codec]. It splits the salt and nonce off the decoded
// blob, re-derives the key, and opens the ciphertext. Returns an error if
// the payload is malformed or the passphrase does not match.
func (c *SealedCodec) Decode(payload string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode sealed payload: %w", err)
	}
	if len(blob) < sealedSaltLen+sealedNonceLen {
		return "", ErrSealedPayloadTooShort
	}

	salt := blob[:sealedSaltLen]
	nonce := blob[sealedSaltLen : sealedSaltLen+sealedNonceLen]
	cipherText := blob[sealedSaltLen+sealedNonceLen:]

	block, err := aes.NewCipher(c.deriveKey(salt))
	if err != nil {
		return "", fmt.Errorf("create seal cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create seal gcm: %w", err)
	}

	plain, err := gcm.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return "", fmt.Errorf("open sealed payload: %w", err)
	}

	return string(plain), nil
}
