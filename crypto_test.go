package pdf

import (
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"testing"
)

func TestMD5KnownAnswers(t *testing.T) {
	cases := map[string]string{
		"":      "d41d8cd98f00b204e9800998ecf8427e",
		"hello": "5d41402abc4b2a76b9719d911017c592",
	}
	for in, want := range cases {
		sum := md5.Sum([]byte(in))
		if got := fmt.Sprintf("%x", sum); got != want {
			t.Errorf("MD5(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestSHA256KnownAnswer(t *testing.T) {
	sum := sha256.Sum256([]byte("hello"))
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := fmt.Sprintf("%x", sum); got != want {
		t.Errorf("SHA-256(hello) = %s, want %s", got, want)
	}
}

func TestRC4KnownAnswer(t *testing.T) {
	got := rc4Crypt([]byte("Key"), []byte("Plaintext"))
	want := []byte{0xbb, 0xf3, 0x16, 0xe8, 0xd9, 0x40, 0xaf, 0x0a, 0xd3}
	if fmt.Sprintf("%x", got) != fmt.Sprintf("%x", want) {
		t.Errorf("RC4(Key, Plaintext) = % x, want % x", got, want)
	}
}

func TestAESECBKnownAnswer(t *testing.T) {
	key := make([]byte, 16)
	block := make([]byte, 16)
	got := aesECBEncryptBlock(key, block)
	want := []byte{
		0x66, 0xe9, 0x4b, 0xd4, 0xef, 0x8a, 0x2c, 0x3b,
		0x88, 0x4c, 0xfa, 0x59, 0xca, 0x34, 0x2b, 0x2e,
	}
	if fmt.Sprintf("%x", got) != fmt.Sprintf("%x", want) {
		t.Errorf("AES-ECB(0^16, 0^16) = % x, want % x", got, want)
	}
}

func TestPadPasswordRejectsWideRunes(t *testing.T) {
	if _, err := padPassword("h€llo"); err != ErrInvalidPassword {
		t.Errorf("padPassword with a code point > 0xFF: got %v, want ErrInvalidPassword", err)
	}
}

func TestPadPasswordPadsShortPasswords(t *testing.T) {
	padded, err := padPassword("test")
	if err != nil {
		t.Fatal(err)
	}
	if len(padded) != 32 {
		t.Fatalf("len(padded) = %d, want 32", len(padded))
	}
	if string(padded[:4]) != "test" {
		t.Errorf("padded[:4] = %q, want %q", padded[:4], "test")
	}
	if !bytesEqual(padded[4:], passwordPadding[:28]) {
		t.Errorf("padded[4:] does not match the standard padding prefix")
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestObjectKeyV124DiffersByObjectNumber(t *testing.T) {
	fileKey := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	k1 := objectKeyV124(fileKey, 1, 0, 1)
	k2 := objectKeyV124(fileKey, 2, 0, 1)
	if bytesEqual(k1, k2) {
		t.Error("keys for different object numbers should differ")
	}
	if len(k1) != 16 {
		t.Errorf("len(key) = %d, want 16", len(k1))
	}
}
