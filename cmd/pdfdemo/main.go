// Command pdfdemo writes a small single-page PDF file, optionally
// encrypted, to demonstrate the pdf package's writer API.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/blikblum/pdfkit"
)

func main() {
	out := flag.String("o", "demo.pdf", "output file")
	version := flag.String("version", "1.7", "PDF version (1.3 .. 1.7, or 1.7ext3 for AES-256)")
	userPassword := flag.String("user-password", "", "user password (prompted for if -encrypt is set and this is empty)")
	ownerPassword := flag.String("owner-password", "", "owner password")
	encrypt := flag.Bool("encrypt", false, "encrypt the document")
	flag.Parse()

	if *encrypt && *userPassword == "" {
		pwd, err := pdf.ReadPasswordStdin("user password: ")
		if err != nil {
			log.Fatal(err)
		}
		*userPassword = pwd
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	opts := pdf.Options{
		Info: pdf.Info{
			Title:    "pdfdemo output",
			Producer: "pdfdemo",
		},
		PDFVersion: *version,
		Lang:       "en",
	}
	if *encrypt {
		opts.UserPassword = *userPassword
		opts.OwnerPassword = *ownerPassword
		opts.Permissions = pdf.Permissions{
			Printing: pdf.PrintHighResolution,
			Copying:  true,
		}
	}

	doc, err := pdf.NewDocument(f, opts)
	if err != nil {
		log.Fatal(err)
	}

	contents := pdf.NewDict()
	contentsHandle := doc.Ref(contents)
	_, err = contentsHandle.Write([]byte("BT /F1 24 Tf 72 720 Td (Hello, World!) Tj ET"))
	if err != nil {
		log.Fatal(err)
	}
	contentsHandle.End()

	resources := pdf.NewDict()
	font := pdf.NewDict()
	font.Set("Type", pdf.Name("Font"))
	font.Set("Subtype", pdf.Name("Type1"))
	font.Set("BaseFont", pdf.Name("Helvetica"))
	fonts := pdf.NewDict()
	fonts.Set("F1", font)
	resources.Set("Font", fonts)

	page := pdf.NewDict()
	page.Set("MediaBox", pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(612), pdf.Integer(792)})
	page.Set("Resources", resources)
	page.Set("Contents", contentsHandle.Reference())
	pageHandle := doc.AddPage(page)
	pageHandle.End()

	if err := doc.End(); err != nil {
		log.Fatal(err)
	}
}
