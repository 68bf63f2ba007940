package security

import (
	"errors"
	"strings"
	"testing"
)

const testKey = "test-encryption-key-12345678901234"

func newTestBox(t *testing.T) *Box {
	t.Helper()
	box, err := NewBox(testKey)
	if err != nil {
		t.Fatalf("NewBox() error = %v", err)
	}
	return box
}

func TestNewBoxKeyLengths(t *testing.T) {
	keys := []string{
		"short-key",
		"12345678901234567890123456789012",
		"this-is-a-very-long-key-that-exceeds-32-bytes-by-quite-a-lot",
	}
	for _, key := range keys {
		if _, err := NewBox(key); err != nil {
			t.Errorf("NewBox(%q) error = %v", key, err)
		}
	}

	if _, err := NewBox(""); err == nil {
		t.Errorf("Expected error for empty key")
	}
}

func TestSealOpenRoundTrip(t *testing.T) {
	box := newTestBox(t)

	testCases := []struct {
		name  string
		value string
	}{
		{"Simple text", "Hello, world!"},
		{"Empty string", ""},
		{"Notification payload", `[{"id":"delete-category","title":"Listo"}]`},
		{"Special characters", "¿Quieres eliminar Bebidas?"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sealed, err := box.Seal([]byte(tc.value))
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}
			if strings.ContainsAny(sealed, "+/=") {
				t.Errorf("Sealed value is not URL safe: %q", sealed)
			}

			opened, err := box.Open(sealed)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if string(opened) != tc.value {
				t.Errorf("Expected %q, got %q", tc.value, opened)
			}
		})
	}
}

func TestSealProducesDifferentCiphertexts(t *testing.T) {
	box := newTestBox(t)

	first, _ := box.Seal([]byte("same"))
	second, _ := box.Seal([]byte("same"))
	if first == second {
		t.Errorf("Expected random nonces to produce different ciphertexts")
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	box := newTestBox(t)

	if _, err := box.Open("not base64!"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for invalid encoding, got %v", err)
	}
	if _, err := box.Open("YQ"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for short input, got %v", err)
	}

	other, err := NewBox("another-key")
	if err != nil {
		t.Fatal(err)
	}
	sealed, _ := other.Seal([]byte("secret"))
	if _, err := box.Open(sealed); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for wrong key, got %v", err)
	}
}
