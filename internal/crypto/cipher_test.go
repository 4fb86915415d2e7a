package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSealAESGCM_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, 32)
	plaintext := []byte("the quick brown fox")

	ciphertext, iv, tag, err := sealAESGCM(plaintext, key)
	if err != nil {
		t.Fatalf("sealAESGCM error: %v", err)
	}

	if len(iv) != 16 {
		t.Fatalf("iv length = %d, want 16", len(iv))
	}
	if len(tag) != 16 {
		t.Fatalf("tag length = %d, want 16", len(tag))
	}
	if len(ciphertext) != len(plaintext) {
		t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), len(plaintext))
	}

	got, err := openAESGCM(ciphertext, key, iv, tag)
	if err != nil {
		t.Fatalf("openAESGCM error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestSealAESGCM_FreshIVPerCall(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, 32)
	plaintext := []byte("same plaintext twice")

	ct1, iv1, _, err := sealAESGCM(plaintext, key)
	if err != nil {
		t.Fatalf("sealAESGCM error: %v", err)
	}
	ct2, iv2, _, err := sealAESGCM(plaintext, key)
	if err != nil {
		t.Fatalf("sealAESGCM error: %v", err)
	}

	if bytes.Equal(iv1, iv2) {
		t.Fatalf("expected different IVs for two encryptions")
	}
	if bytes.Equal(ct1, ct2) {
		t.Fatalf("expected different ciphertexts for two encryptions")
	}
}

func TestOpenAESGCM_WrongKeyFails(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, 32)
	other := bytes.Repeat([]byte{0x2B}, 32)

	ciphertext, iv, tag, err := sealAESGCM([]byte("secret"), key)
	if err != nil {
		t.Fatalf("sealAESGCM error: %v", err)
	}

	if _, err := openAESGCM(ciphertext, other, iv, tag); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestOpenAESGCM_TamperDetection(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, 32)

	ciphertext, iv, tag, err := sealAESGCM([]byte("tamper target payload"), key)
	if err != nil {
		t.Fatalf("sealAESGCM error: %v", err)
	}

	flipBit := func(b []byte) []byte {
		out := bytes.Clone(b)
		out[0] ^= 0x01
		return out
	}

	if _, err := openAESGCM(flipBit(ciphertext), key, iv, tag); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("flipped ciphertext: error = %v, want ErrAuthenticationFailed", err)
	}
	if _, err := openAESGCM(ciphertext, key, flipBit(iv), tag); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("flipped iv: error = %v, want ErrAuthenticationFailed", err)
	}
	if _, err := openAESGCM(ciphertext, key, iv, flipBit(tag)); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("flipped tag: error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestOpenAESGCM_BadIVLength(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, 32)

	ciphertext, _, tag, err := sealAESGCM([]byte("payload"), key)
	if err != nil {
		t.Fatalf("sealAESGCM error: %v", err)
	}

	shortIV := bytes.Repeat([]byte{0x00}, 12)
	if _, err := openAESGCM(ciphertext, key, shortIV, tag); !errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("short iv: error = %v, want ErrMalformedEnvelope", err)
	}
}
