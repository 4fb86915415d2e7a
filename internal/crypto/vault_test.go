package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

func newTestVault(t *testing.T, secret string) BlobVault {
	t.Helper()

	vault, err := NewBlobVault(secret, NewKeyChain())
	if err != nil {
		t.Fatalf("NewBlobVault error: %v", err)
	}
	return vault
}

func TestNewBlobVault_EmptySecretRefused(t *testing.T) {
	if _, err := NewBlobVault("", NewKeyChain()); !errors.Is(err, ErrMissingMasterSecret) {
		t.Fatalf("error = %v, want ErrMissingMasterSecret", err)
	}
}

func TestEncryptBlob_RoundTripAcrossSizes(t *testing.T) {
	vault := newTestVault(t, "master-secret")
	ctx := models.NewKeyContext(1, 2)

	large := make([]byte, 1<<20+3)
	for i := range large {
		large[i] = byte(i*31 + 7)
	}

	cases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single byte", data: []byte{0xC4}},
		{name: "over 1MiB", data: large},
	}

	for _, tc := range cases {
		blob, err := vault.EncryptBlob(tc.data, ctx)
		if err != nil {
			t.Fatalf("%s: EncryptBlob error: %v", tc.name, err)
		}

		// salt + iv + tag header plus the ciphertext itself.
		if len(blob) != 96+len(tc.data) {
			t.Fatalf("%s: blob length = %d, want %d", tc.name, len(blob), 96+len(tc.data))
		}

		got, err := vault.DecryptBlob(blob, ctx)
		if err != nil {
			t.Fatalf("%s: DecryptBlob error: %v", tc.name, err)
		}
		if !bytes.Equal(got, tc.data) {
			t.Fatalf("%s: round trip mismatch", tc.name)
		}
	}
}

func TestEncryptBlob_FreshSaltPerBlob(t *testing.T) {
	vault := newTestVault(t, "master-secret")
	ctx := models.NewKeyContext(1, 2)

	b1, err := vault.EncryptBlob([]byte("same bytes"), ctx)
	if err != nil {
		t.Fatalf("EncryptBlob error: %v", err)
	}
	b2, err := vault.EncryptBlob([]byte("same bytes"), ctx)
	if err != nil {
		t.Fatalf("EncryptBlob error: %v", err)
	}

	if bytes.Equal(b1[:64], b2[:64]) {
		t.Fatalf("expected different salts for two blobs")
	}
	if bytes.Equal(b1[64:80], b2[64:80]) {
		t.Fatalf("expected different IVs for two blobs")
	}
}

func TestDecryptBlob_WrongContextFails(t *testing.T) {
	vault := newTestVault(t, "master-secret")

	blob, err := vault.EncryptBlob([]byte("attachment bytes"), models.NewKeyContext(1, 2))
	if err != nil {
		t.Fatalf("EncryptBlob error: %v", err)
	}

	if _, err := vault.DecryptBlob(blob, models.NewKeyContext(2, 1)); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("swapped context: error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecryptBlob_TamperDetection(t *testing.T) {
	vault := newTestVault(t, "master-secret")
	ctx := models.NewKeyContext(1, 2)

	blob, err := vault.EncryptBlob([]byte("attachment bytes"), ctx)
	if err != nil {
		t.Fatalf("EncryptBlob error: %v", err)
	}

	for _, offset := range []int{0, 64, 80, 96} {
		tampered := bytes.Clone(blob)
		tampered[offset] ^= 0x01

		if _, err := vault.DecryptBlob(tampered, ctx); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("flipped byte at %d: error = %v, want ErrAuthenticationFailed", offset, err)
		}
	}
}

func TestDecryptBlob_ShortInputIsMalformed(t *testing.T) {
	vault := newTestVault(t, "master-secret")

	for _, size := range []int{0, 1, 95} {
		short := make([]byte, size)

		if _, err := vault.DecryptBlob(short, models.NewKeyContext(1, 2)); !errors.Is(err, ErrMalformedEnvelope) {
			t.Fatalf("%d bytes: error = %v, want ErrMalformedEnvelope", size, err)
		}
	}
}
