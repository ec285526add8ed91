package pdf

import (
	"fmt"
	"io"
)

// writeXref appends the classic cross-reference table, trailer and footer
// to ow. Unlike many PDF writers this never emits a cross-reference
// stream: the format stays the human-readable table regardless of PDF
// version, and every line ends in a bare "\n".
func writeXref(ow *objectWriter, offsets map[int]int64, highest int, catalogRef, infoRef Reference, encRef *Reference, fileID1 []byte) error {
	xrefPos := ow.offset()

	if _, err := io.WriteString(ow, "xref\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(ow, "0 %d\n", highest+1); err != nil {
		return err
	}
	if _, err := io.WriteString(ow, "0000000000 65535 f \n"); err != nil {
		return err
	}
	for num := 1; num <= highest; num++ {
		off, ok := offsets[num]
		if !ok {
			if _, err := io.WriteString(ow, "0000000000 00000 f \n"); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(ow, "%010d %05d n \n", off, 0); err != nil {
			return err
		}
	}

	trailer := NewDict()
	trailer.Set("Size", Integer(highest+1))
	trailer.Set("Root", catalogRef)
	trailer.Set("Info", infoRef)
	id := NewHexString(fileID1)
	trailer.Set("ID", Array{id, id})
	if encRef != nil {
		trailer.Set("Encrypt", *encRef)
	}

	if _, err := io.WriteString(ow, "trailer\n"); err != nil {
		return err
	}
	if err := trailer.PDF(ow); err != nil {
		return err
	}
	if _, err := io.WriteString(ow, "\n"); err != nil {
		return err
	}

	_, err := fmt.Fprintf(ow, "startxref\n%d\n%%%%EOF\n", xrefPos)
	return err
}
