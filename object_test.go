package pdf

import (
	"bytes"
	"testing"
)

func render(t *testing.T, o Object) string {
	t.Helper()
	var buf bytes.Buffer
	if err := o.PDF(&buf); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	return buf.String()
}

func TestIntegerReal(t *testing.T) {
	cases := []struct {
		obj  Object
		want string
	}{
		{Integer(0), "0"},
		{Integer(-17), "-17"},
		{Real(0), "0"},
		{Real(1.5), "1.5"},
		{Real(-0.0), "0"},
		{Real(1.0 / 3), "0.333333"},
		{Real(2), "2"},
	}
	for _, c := range cases {
		if got := render(t, c.obj); got != c.want {
			t.Errorf("render(%#v) = %q, want %q", c.obj, got, c.want)
		}
	}
}

func TestNameEscaping(t *testing.T) {
	cases := []struct {
		name Name
		want string
	}{
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Name("F#1"), "/F#231"},
		{Name(""), "/"},
	}
	for _, c := range cases {
		if got := render(t, c.name); got != c.want {
			t.Errorf("render(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestDictOrderPreserved(t *testing.T) {
	d := NewDict()
	d.Set("Z", Integer(1))
	d.Set("A", Integer(2))
	d.Set("Z", Integer(3)) // update, not reorder

	got := render(t, d)
	want := "<</Z 3 /A 2 >>"
	if got != want {
		t.Errorf("render(dict) = %q, want %q", got, want)
	}

	if keys := d.Keys(); len(keys) != 2 || keys[0] != "Z" || keys[1] != "A" {
		t.Errorf("Keys() = %v, want [Z A]", keys)
	}
}

func TestDictDelete(t *testing.T) {
	d := NewDict()
	d.Set("A", Integer(1))
	d.Set("B", Integer(2))
	d.Delete("A")
	if _, ok := d.Get("A"); ok {
		t.Fatal("A should have been deleted")
	}
	if got := render(t, d); got != "<</B 2 >>" {
		t.Errorf("render(dict) = %q", got)
	}
}

func TestArrayNilElement(t *testing.T) {
	a := Array{Integer(1), nil, Integer(3)}
	if got, want := render(t, a), "[1 null 3]"; got != want {
		t.Errorf("render(array) = %q, want %q", got, want)
	}
}

func TestLiteralStringEscaping(t *testing.T) {
	s := NewLiteralString([]byte("a(b)c\\d\ne"))
	got := render(t, s)
	want := `(a\(b\)c\\d\ne)`
	if got != want {
		t.Errorf("render(string) = %q, want %q", got, want)
	}
}

func TestHexString(t *testing.T) {
	s := NewHexString([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if got, want := render(t, s), "<DEADBEEF>"; got != want {
		t.Errorf("render(hex string) = %q, want %q", got, want)
	}
}

func TestTextStringASCIIFallback(t *testing.T) {
	s := TextString("hello")
	if got, want := render(t, s), "(hello)"; got != want {
		t.Errorf("render(TextString) = %q, want %q", got, want)
	}
}

func TestTextStringUTF16Fallback(t *testing.T) {
	s := TextString("héllo")
	got := s.Bytes()
	if len(got) < 2 || got[0] != 0xFE || got[1] != 0xFF {
		t.Fatalf("expected UTF-16BE BOM, got % x", got)
	}
}
