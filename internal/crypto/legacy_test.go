package crypto

import (
	"errors"
	"testing"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

func TestNormalizeEnvelope_ModernPassesThrough(t *testing.T) {
	in := models.Envelope{
		Ciphertext: "Y2lwaGVy",
		IV:         "aXYtdmFsdWU=",
		Algorithm:  models.AlgorithmAES256GCM,
		AuthTag:    "dGFn",
		HMAC:       "abc123",
	}

	out, err := normalizeEnvelope(in)
	if err != nil {
		t.Fatalf("normalizeEnvelope error: %v", err)
	}
	if out != in {
		t.Fatalf("modern envelope changed: got %+v, want %+v", out, in)
	}
}

func TestNormalizeEnvelope_SplitsLegacyForm(t *testing.T) {
	in := models.Envelope{
		Ciphertext: "Y2lwaGVy.dGFn",
		IV:         "aXYtdmFsdWU=",
		Algorithm:  models.AlgorithmAES256GCM,
		HMAC:       "abc123",
	}

	out, err := normalizeEnvelope(in)
	if err != nil {
		t.Fatalf("normalizeEnvelope error: %v", err)
	}

	if out.Ciphertext != "Y2lwaGVy" {
		t.Fatalf("ciphertext = %q, want %q", out.Ciphertext, "Y2lwaGVy")
	}
	if out.AuthTag != "dGFn" {
		t.Fatalf("auth tag = %q, want %q", out.AuthTag, "dGFn")
	}
	if out.IV != in.IV || out.HMAC != in.HMAC {
		t.Fatalf("unrelated fields changed: %+v", out)
	}
}

func TestNormalizeEnvelope_NoDelimiterIsMalformed(t *testing.T) {
	in := models.Envelope{Ciphertext: "Y2lwaGVyd2l0aG91dHRhZw=="}

	if _, err := normalizeEnvelope(in); !errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("error = %v, want ErrMalformedEnvelope", err)
	}
}

func TestNormalizeEnvelope_TooManyPartsIsMalformed(t *testing.T) {
	in := models.Envelope{Ciphertext: "part1.part2.part3"}

	if _, err := normalizeEnvelope(in); !errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("error = %v, want ErrMalformedEnvelope", err)
	}
}
