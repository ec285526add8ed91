// Package pdf implements the object model, serializer, and standard
// security handler used to author PDF files conforming to ISO 32000.
//
// A [Document] is a streaming writer: producers allocate indirect objects
// with [Document.Ref], write dictionary entries or stream bytes into them,
// and call the handle's End method when the object is complete. Objects
// may be finished in any order. [NewDocument] writes the header;
// [Document.End] writes every allocated object, the cross-reference table
// and the trailer.
//
//	doc, err := pdf.NewDocument(w, pdf.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	page := pdf.NewDict()
//	page.Set("Type", pdf.Name("Page"))
//	h := doc.AddPage(page)
//	h.End()
//	if err := doc.End(); err != nil {
//		log.Fatal(err)
//	}
package pdf
