package pdf

import (
	"bytes"
	"compress/zlib"
)

// encodeStream produces the final on-disk payload for h's stream: it
// applies FlateDecode compression (unless disabled), encrypts the result
// if the document is encrypted, and updates h.dict's /Filter and /Length
// entries to match.
func (doc *Document) encodeStream(h *Handle) ([]byte, error) {
	payload := h.stream

	if !doc.opts.DisableCompression && len(payload) > 0 {
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		payload = buf.Bytes()
		prependFilter(h.dict, "FlateDecode")
	}

	if doc.enc != nil {
		enc, err := doc.enc.encrypt(h.ref, payload)
		if err != nil {
			return nil, err
		}
		payload = enc
	}

	// h.dict is already sealed by the time flush calls this (the producer
	// closed the handle with End before Document.End began finalizing), so
	// forceSet bypasses the seal for this internal bookkeeping.
	h.dict.forceSet("Length", Integer(len(payload)))
	return payload, nil
}

// prependFilter adds name to the front of dict's /Filter entry, creating
// or converting it to an array as needed. Called only from encodeStream,
// on an already-sealed dict.
func prependFilter(dict *Dict, name Name) {
	existing, ok := dict.Get("Filter")
	if !ok {
		dict.forceSet("Filter", name)
		return
	}
	switch v := existing.(type) {
	case Name:
		dict.forceSet("Filter", Array{name, v})
	case Array:
		dict.forceSet("Filter", append(Array{name}, v...))
	default:
		dict.forceSet("Filter", name)
	}
}
