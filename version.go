package pdf

import "fmt"

// Version identifies the PDF version a document declares in its header and
// the encryption revision it selects when a password is configured.
type Version int

// Supported PDF versions. These are the only values [Options.PDFVersion]
// accepts; this writer never needs to represent 2.0 or versions below 1.3.
const (
	V1_3 Version = iota
	V1_4
	V1_5
	V1_6
	V1_7
	V1_7Ext3 // "1.7 Adobe Extension Level 3", selects AES-256 (V5/R5)
)

// ParseVersion parses a configured PDF version string ("1.3" .. "1.7", or
// "1.7ext3" to select AES-256 encryption) into a Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "", "1.3":
		return V1_3, nil
	case "1.4":
		return V1_4, nil
	case "1.5":
		return V1_5, nil
	case "1.6":
		return V1_6, nil
	case "1.7":
		return V1_7, nil
	case "1.7ext3":
		return V1_7Ext3, nil
	}
	return 0, fmt.Errorf("pdf: unsupported pdfVersion %q", s)
}

// header returns the major/minor pair written into the "%PDF-M.m" line.
func (v Version) header() (major, minor int) {
	if v == V1_7Ext3 {
		return 1, 7
	}
	return 1, 3 + int(v)
}

func (v Version) String() string {
	if v == V1_7Ext3 {
		return "1.7ext3"
	}
	major, minor := v.header()
	return fmt.Sprintf("%d.%d", major, minor)
}

// secProfile is the (V, R, keyBits, cipher) tuple a PDF version selects for
// the Standard security handler.
type secProfile struct {
	V       int
	R       int
	keyBits int
	cipher  cipherKind
}

type cipherKind int

const (
	cipherRC4 cipherKind = iota
	cipherAESV2
	cipherAESV3
)

func (v Version) securityProfile() secProfile {
	switch v {
	case V1_3:
		return secProfile{V: 1, R: 2, keyBits: 40, cipher: cipherRC4}
	case V1_4, V1_5:
		return secProfile{V: 2, R: 3, keyBits: 128, cipher: cipherRC4}
	case V1_6, V1_7:
		return secProfile{V: 4, R: 4, keyBits: 128, cipher: cipherAESV2}
	case V1_7Ext3:
		return secProfile{V: 5, R: 5, keyBits: 256, cipher: cipherAESV3}
	default:
		return secProfile{V: 1, R: 2, keyBits: 40, cipher: cipherRC4}
	}
}
