package pdf

import "io"

// objectWriter is the byte sink every token is ultimately written through.
// It counts every byte actually delivered downstream -- the running count
// is the sole source of truth for cross-reference offsets -- and carries
// the identity of whichever indirect object is currently being serialized,
// so that [String.PDF] can look up the right per-object encryption key
// without threading it through every call.
type objectWriter struct {
	w   io.Writer
	pos int64

	encryptor *objectEncryptor
	activeRef Reference
}

func newObjectWriter(w io.Writer) *objectWriter {
	return &objectWriter{w: w}
}

func (ow *objectWriter) Write(p []byte) (int, error) {
	n, err := ow.w.Write(p)
	ow.pos += int64(n)
	if err != nil {
		return n, &SinkError{Err: err}
	}
	return n, nil
}

// offset returns the number of bytes written so far, i.e. the byte
// position at which the next write will land.
func (ow *objectWriter) offset() int64 { return ow.pos }
