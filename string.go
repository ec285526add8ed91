package pdf

import (
	"bytes"
	"fmt"
	"io"
	"time"
	"unicode/utf16"
)

// stringForm selects how a String value is rendered on the wire.
type stringForm int

const (
	formLiteral stringForm = iota
	formHex
)

// String is a PDF string object: either a literal string "( ... )" or a
// hex string "< ... >". Both forms carry arbitrary bytes; the form only
// affects how those bytes are escaped on the wire.
type String struct {
	raw  []byte
	form stringForm
}

// NewLiteralString wraps raw bytes for literal-string ("( ... )") output.
func NewLiteralString(raw []byte) String { return String{raw: raw, form: formLiteral} }

// NewHexString wraps raw bytes for hex-string ("< ... >") output. Used for
// the trailer's file IDs.
func NewHexString(raw []byte) String { return String{raw: raw, form: formHex} }

// Buffer wraps an arbitrary byte slice for serialization as a literal
// string.
type Buffer []byte

// PDF implements [Object].
func (b Buffer) PDF(w io.Writer) error {
	return String{raw: []byte(b), form: formLiteral}.PDF(w)
}

// TextString encodes s using PDF's "text string" convention: the
// PDFDocEncoding-compatible subset when every rune fits, otherwise
// UTF-16BE with a leading byte-order mark.
func TextString(s string) String {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := pdfDocEncode(r)
		if !ok {
			return String{raw: utf16BEWithBOM(s), form: formLiteral}
		}
		buf = append(buf, c)
	}
	return String{raw: buf, form: formLiteral}
}

func utf16BEWithBOM(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2+2*len(units))
	out[0], out[1] = 0xFE, 0xFF
	for i, u := range units {
		out[2+2*i] = byte(u >> 8)
		out[3+2*i] = byte(u)
	}
	return out
}

// Bytes returns the string's raw, undecoded bytes.
func (s String) Bytes() []byte { return s.raw }

// PDF implements [Object]. If w carries an active per-object encryptor,
// the raw bytes are encrypted before being escaped, so that the
// ciphertext -- not the plaintext -- is what reaches disk.
func (s String) PDF(w io.Writer) error {
	data := s.raw
	if ow, ok := w.(*objectWriter); ok && ow.encryptor != nil {
		enc, err := ow.encryptor.encrypt(ow.activeRef, data)
		if err != nil {
			return err
		}
		data = enc
	}

	if s.form == formHex {
		_, err := fmt.Fprintf(w, "<%X>", data)
		return err
	}
	return writeLiteralString(w, data)
}

func writeLiteralString(w io.Writer, data []byte) error {
	var buf bytes.Buffer
	buf.WriteByte('(')
	for _, c := range data {
		switch c {
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '(':
			buf.WriteString(`\(`)
		case ')':
			buf.WriteString(`\)`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&buf, `\%03o`, c)
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// formatPDFDate renders t per PDF date syntax, D:YYYYMMDDHHmmSSOHH'mm', in
// UTC.
func formatPDFDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("D:%04d%02d%02d%02d%02d%02dZ00'00'",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// Date formats t per PDF date syntax and returns it as a literal string.
func Date(t time.Time) String {
	return NewLiteralString([]byte(formatPDFDate(t)))
}
