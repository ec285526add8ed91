package pdf

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"crypto/rc4"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"github.com/xdg-go/stringprep"
)

// passwordPadding is the fixed 32-byte constant used to pad R2-R4 passwords.
var passwordPadding = []byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
	0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
	0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}

var zeroIV16 = make([]byte, 16)

// padPassword prepares an R2-R4 password: up to 32 bytes of the
// PDFDocEncoding-compatible bytes of pwd, padded with passwordPadding.
// Passwords containing a code point above 0xFF are rejected.
func padPassword(pwd string) ([]byte, error) {
	raw := make([]byte, 0, len(pwd))
	for _, r := range pwd {
		if r > 0xFF {
			return nil, ErrInvalidPassword
		}
		raw = append(raw, byte(r))
	}
	if len(raw) > 32 {
		raw = raw[:32]
	}
	out := make([]byte, 32)
	n := copy(out, raw)
	copy(out[n:], passwordPadding)
	return out, nil
}

// prepareR5Password applies SASLprep (RFC 4013) and truncates to 127
// bytes, matching the R5 password-preparation algorithm.
func prepareR5Password(pwd string) ([]byte, error) {
	prepped, err := stringprep.SASLprep.Prepare(pwd)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	buf := []byte(prepped)
	if len(buf) > 127 {
		buf = buf[:127]
	}
	return buf, nil
}

func md5Sum(parts ...[]byte) []byte {
	h := md5.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func rc4Crypt(key, data []byte) []byte {
	c, err := rc4.NewCipher(key)
	if err != nil {
		panic(err) // key length is always 5..32, guaranteed by callers
	}
	out := make([]byte, len(data))
	c.XORKeyStream(out, data)
	return out
}

// computeOwnerEntry computes the /O dictionary entry for revisions 2-4.
func computeOwnerEntry(paddedUser, paddedOwner []byte, r, keyBits int) []byte {
	digest := md5Sum(paddedOwner)
	if r >= 3 {
		for i := 0; i < 50; i++ {
			digest = md5Sum(digest)
		}
	}
	key := digest[:keyBits/8]

	cipherText := append([]byte(nil), paddedUser...)
	if r >= 3 {
		for i := 0; i < 20; i++ {
			round := xorKey(key, byte(i))
			cipherText = rc4Crypt(round, cipherText)
		}
	} else {
		cipherText = rc4Crypt(key, cipherText)
	}
	return cipherText
}

func xorKey(key []byte, b byte) []byte {
	out := make([]byte, len(key))
	for i, k := range key {
		out[i] = k ^ b
	}
	return out
}

// computeFileKey derives the file encryption key for revisions 2-4.
func computeFileKey(paddedUser, ownerEntry []byte, perms int32, fileID1 []byte, r, keyBits int) []byte {
	var permsLE [4]byte
	binary.LittleEndian.PutUint32(permsLE[:], uint32(perms))

	digest := md5Sum(paddedUser, ownerEntry, permsLE[:], fileID1)
	if r >= 3 {
		for i := 0; i < 50; i++ {
			digest = md5Sum(digest[:keyBits/8])
		}
	}
	return digest[:keyBits/8]
}

// computeUserEntry computes the /U dictionary entry for revisions 2-4.
func computeUserEntry(r int, fileKey, fileID1 []byte) []byte {
	if r == 2 {
		u := rc4Crypt(fileKey, passwordPadding)
		out := make([]byte, 32)
		copy(out, u)
		return out
	}

	h := md5Sum(passwordPadding, fileID1)
	for i := 0; i < 20; i++ {
		h = rc4Crypt(xorKey(fileKey, byte(i)), h)
	}
	out := make([]byte, 32)
	copy(out, h)
	return out
}

// aesCBCEncryptPKCS7 encrypts data with AES-CBC under key/iv, padding with
// PKCS#7 first.
func aesCBCEncryptPKCS7(key, iv, data []byte) []byte {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	padLen := aes.BlockSize - len(data)%aes.BlockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out
}

// aesCBCEncryptNoPad encrypts data (whose length must already be a
// multiple of the AES block size) with AES-CBC and no padding, used for
// UE/OE in the R5 handler.
func aesCBCEncryptNoPad(key, iv, data []byte) []byte {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, data)
	return out
}

func aesECBEncryptBlock(key, block16 []byte) []byte {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	out := make([]byte, len(block16))
	block.Encrypt(out, block16)
	return out
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// r5Entries computes the U, UE, O, OE and Perms dictionary entries for the
// AES-256 (V5/R5) handler.
func r5Entries(fileKey, pwUser, pwOwner []byte, perms int32) (U, UE, O, OE, Perms []byte, err error) {
	valSaltU, err := randomBytes(8)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	keySaltU, err := randomBytes(8)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	hU := sha256.Sum256(append(append([]byte(nil), pwUser...), valSaltU...))
	U = append(append(append([]byte(nil), hU[:]...), valSaltU...), keySaltU...)

	keyU := sha256.Sum256(append(append([]byte(nil), pwUser...), keySaltU...))
	UE = aesCBCEncryptNoPad(keyU[:], zeroIV16, fileKey)

	valSaltO, err := randomBytes(8)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	keySaltO, err := randomBytes(8)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	oInput := append(append([]byte(nil), pwOwner...), valSaltO...)
	oInput = append(oInput, U...)
	hO := sha256.Sum256(oInput)
	O = append(append(append([]byte(nil), hO[:]...), valSaltO...), keySaltO...)

	oKeyInput := append(append([]byte(nil), pwOwner...), keySaltO...)
	oKeyInput = append(oKeyInput, U...)
	keyO := sha256.Sum256(oKeyInput)
	OE = aesCBCEncryptNoPad(keyO[:], zeroIV16, fileKey)

	permsBlock := make([]byte, 16)
	binary.LittleEndian.PutUint32(permsBlock[0:4], uint32(perms))
	permsBlock[4], permsBlock[5], permsBlock[6], permsBlock[7] = 0xFF, 0xFF, 0xFF, 0xFF
	copy(permsBlock[8:12], []byte("Tadb"))
	rnd, err := randomBytes(4)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	copy(permsBlock[12:16], rnd)
	Perms = aesECBEncryptBlock(fileKey, permsBlock)

	return U, UE, O, OE, Perms, nil
}

// objectKeyV124 derives the per-object RC4/AES-128 key for versions 1, 2
// and 4.
func objectKeyV124(fileKey []byte, objNum, gen int, v int) []byte {
	suffix := []byte{
		byte(objNum), byte(objNum >> 8), byte(objNum >> 16),
		byte(gen), byte(gen >> 8),
	}
	digest := append(append([]byte(nil), fileKey...), suffix...)
	if v == 4 {
		digest = append(digest, 's', 'A', 'l', 'T')
	}
	sum := md5Sum(digest)
	n := len(fileKey) + 5
	if n > 16 {
		n = 16
	}
	return sum[:n]
}

func comparePrefix(a, b []byte) bool {
	return bytes.Equal(a, b)
}
