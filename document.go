package pdf

import (
	"fmt"
	"io"
)

// Options configures a new [Document].
type Options struct {
	// Info populates the document's Information Dictionary and seeds the
	// file identifier.
	Info Info

	// PDFVersion selects the header version and, when a password is set,
	// the encryption revision. The empty string selects 1.3.
	PDFVersion string

	// UserPassword, if non-empty, is required to open the document at all.
	UserPassword string

	// OwnerPassword, if non-empty, is required to change Permissions. If
	// empty while UserPassword is set, OwnerPassword defaults to
	// UserPassword.
	OwnerPassword string

	// Permissions lists the capabilities granted to a user who supplies
	// only the user password. Ignored unless a password is set.
	Permissions Permissions

	// DisableCompression turns off FlateDecode compression of stream
	// payloads. Compression is applied by default.
	DisableCompression bool

	// Lang sets the document's default natural language, written in
	// canonical BCP 47 form as the catalog's /Lang entry when non-empty.
	// A value that does not parse as a language tag is omitted.
	Lang string
}

// Document is a streaming PDF writer. Producers open indirect objects with
// [Document.Ref] or [Document.AddPage], write their content, and close each
// handle with [Handle.End]; the objects are not actually serialized to the
// underlying writer until [Document.End] flushes them, so that a page's
// dictionary can still be amended (for example with its /Parent entry)
// after content has been written to it.
type Document struct {
	version Version
	opts    Options
	sec     *security
	enc     *objectEncryptor
	fileID1 []byte

	ow      *objectWriter
	nextNum int
	pending []*Handle
	offsets map[int]int64

	pages []Reference

	ended bool
}

// Handle is an open indirect object: a dictionary plus, optionally, a
// stream payload.
type Handle struct {
	doc    *Document
	ref    Reference
	dict   *Dict
	stream []byte
	isStm  bool
	ended  bool

	// noEncrypt exempts this object's own strings from the per-object
	// encryption transform. Set only on the /Encrypt dictionary itself:
	// its O/U/OE/UE/Perms entries are the key material a reader needs in
	// order to derive the decryption key in the first place, so they are
	// never themselves encrypted.
	noEncrypt bool
}

// NewDocument prepares w to receive a new PDF file and writes its header.
func NewDocument(w io.Writer, opts Options) (*Document, error) {
	version, err := ParseVersion(opts.PDFVersion)
	if err != nil {
		return nil, err
	}

	fileID1 := generateFileID(opts.Info)

	doc := &Document{
		version: version,
		opts:    opts,
		ow:      newObjectWriter(w),
		nextNum: 1,
		offsets: make(map[int]int64),
		fileID1: fileID1,
	}

	if opts.UserPassword != "" || opts.OwnerPassword != "" {
		profile := version.securityProfile()
		sec, err := newSecurity(profile, opts.UserPassword, opts.OwnerPassword, opts.Permissions, fileID1)
		if err != nil {
			return nil, err
		}
		doc.sec = sec
		doc.enc = newObjectEncryptor(sec)
		doc.ow.encryptor = doc.enc
	}

	major, minor := version.header()
	if _, err := fmt.Fprintf(doc.ow, "%%PDF-%d.%d\n%%\xE2\xE3\xCF\xD3\n", major, minor); err != nil {
		return nil, err
	}
	return doc, nil
}

// Ref allocates a new indirect object backed by dict. The returned handle
// is not written to the output until the document is finalized.
func (doc *Document) Ref(dict *Dict) *Handle {
	if dict == nil {
		dict = NewDict()
	}
	h := &Handle{
		doc:  doc,
		ref:  Reference{Number: doc.nextNum, Generation: 0},
		dict: dict,
	}
	doc.nextNum++
	doc.pending = append(doc.pending, h)
	return h
}

// AddPage allocates a page object and registers it as a leaf of the
// document's page tree. The caller populates dict with the page's own
// entries (/Contents, /Resources, /MediaBox, ...); /Type and /Parent are
// filled in automatically when the document is finalized.
func (doc *Document) AddPage(dict *Dict) *Handle {
	h := doc.Ref(dict)
	doc.pages = append(doc.pages, h.ref)
	return h
}

// Reference returns the handle's object reference, usable immediately in
// other objects even though the handle has not been serialized yet.
func (h *Handle) Reference() Reference { return h.ref }

// Dict returns the handle's dictionary, for further mutation before End is
// called. Set or Delete calls on the returned Dict after End panic with
// ErrWriteAfterEnd.
func (h *Handle) Dict() *Dict { return h.dict }

// Write appends p to the object's stream payload, marking the object as a
// stream object. Write after End returns ErrWriteAfterEnd.
func (h *Handle) Write(p []byte) (int, error) {
	if h.ended {
		return 0, ErrWriteAfterEnd
	}
	h.isStm = true
	h.stream = append(h.stream, p...)
	return len(p), nil
}

// End closes the handle to further writes and dictionary mutation. A
// second call is a silent no-op.
func (h *Handle) End() error {
	if h.ended {
		return nil
	}
	h.ended = true
	h.dict.seal()
	return nil
}

// End finalizes the document: it builds the catalog, page tree, document
// information and (if configured) encryption dictionary, flushes every
// pending object to the underlying writer, and appends the
// cross-reference table, trailer and footer.
func (doc *Document) End() error {
	if doc.ended {
		return nil
	}
	doc.ended = true

	if len(doc.pages) == 0 {
		return ErrEmptyDocument
	}

	pagesDict := NewDict()
	pagesDict.Set("Type", Name("Pages"))
	kids := make(Array, len(doc.pages))
	for i, ref := range doc.pages {
		kids[i] = ref
	}
	pagesDict.Set("Kids", kids)
	pagesDict.Set("Count", Integer(len(doc.pages)))
	pagesHandle := doc.Ref(pagesDict)
	pagesHandle.End()

	for _, ref := range doc.pages {
		for _, h := range doc.pending {
			if h.ref == ref {
				if _, ok := h.dict.Get("Type"); !ok {
					h.dict.forceSet("Type", Name("Page"))
				}
				h.dict.forceSet("Parent", pagesHandle.ref)
			}
		}
	}

	catalogDict := NewDict()
	catalogDict.Set("Type", Name("Catalog"))
	catalogDict.Set("Pages", pagesHandle.ref)
	if doc.opts.Lang != "" {
		if tag, err := normalizeLang(doc.opts.Lang); err == nil {
			catalogDict.Set("Lang", TextString(tag))
		}
	}
	catalogHandle := doc.Ref(catalogDict)
	catalogHandle.End()

	infoHandle := doc.Ref(doc.opts.Info.dict())
	infoHandle.End()

	var encRef *Reference
	if doc.sec != nil {
		encHandle := doc.Ref(doc.sec.encryptDict())
		encHandle.noEncrypt = true
		encHandle.End()
		r := encHandle.ref
		encRef = &r
	}

	for i := 0; i < len(doc.pending); i++ {
		h := doc.pending[i]
		if err := doc.flush(h); err != nil {
			return err
		}
	}

	highest := doc.nextNum - 1
	doc.ow.encryptor = nil // the trailer's /ID strings are never encrypted
	return writeXref(doc.ow, doc.offsets, highest, catalogHandle.ref, infoHandle.ref, encRef, doc.fileID1)
}

// flush serializes h to the underlying writer, recording its byte offset
// for the cross-reference table.
func (doc *Document) flush(h *Handle) error {
	h.ended = true
	doc.offsets[h.ref.Number] = doc.ow.offset()
	doc.ow.activeRef = h.ref
	if h.noEncrypt {
		doc.ow.encryptor = nil
		defer func() { doc.ow.encryptor = doc.enc }()
	}

	if _, err := fmt.Fprintf(doc.ow, "%d %d obj\n", h.ref.Number, h.ref.Generation); err != nil {
		return err
	}

	if h.isStm {
		payload, err := doc.encodeStream(h)
		if err != nil {
			return err
		}
		if err := h.dict.PDF(doc.ow); err != nil {
			return err
		}
		if _, err := io.WriteString(doc.ow, "\nstream\n"); err != nil {
			return err
		}
		if _, err := doc.ow.Write(payload); err != nil {
			return err
		}
		if _, err := io.WriteString(doc.ow, "\nendstream\nendobj\n"); err != nil {
			return err
		}
		return nil
	}

	if err := h.dict.PDF(doc.ow); err != nil {
		return err
	}
	_, err := io.WriteString(doc.ow, "\nendobj\n")
	return err
}
