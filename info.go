package pdf

import (
	"sort"
	"time"

	"golang.org/x/exp/maps"
)

// Info is a PDF Document Information Dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator names the application that created the original document,
	// before any conversion to PDF.
	Creator string

	// Producer names the application that produced this PDF file.
	Producer string

	// CreationDate is the document's creation time. The zero value means
	// "now", both for the /CreationDate entry and for file identifier
	// generation.
	CreationDate time.Time

	// ModDate is the document's last modification time. The zero value
	// omits the entry.
	ModDate time.Time

	// Trapped records the document's trapping status: nil means unknown,
	// otherwise true is "True" and false is "False".
	Trapped *bool

	// Custom holds non-standard Info dictionary entries. Keys are sorted
	// before serialization so that output is reproducible.
	Custom map[string]string
}

func (info Info) creationDate() time.Time {
	if info.CreationDate.IsZero() {
		return time.Now()
	}
	return info.CreationDate
}

// dict renders info as a PDF dictionary.
func (info Info) dict() *Dict {
	d := NewDict()
	setIfNonEmpty(d, "Title", info.Title)
	setIfNonEmpty(d, "Author", info.Author)
	setIfNonEmpty(d, "Subject", info.Subject)
	setIfNonEmpty(d, "Keywords", info.Keywords)
	setIfNonEmpty(d, "Creator", info.Creator)
	setIfNonEmpty(d, "Producer", info.Producer)

	d.Set("CreationDate", Date(info.creationDate()))
	if !info.ModDate.IsZero() {
		d.Set("ModDate", Date(info.ModDate))
	}
	if info.Trapped != nil {
		if *info.Trapped {
			d.Set("Trapped", Name("True"))
		} else {
			d.Set("Trapped", Name("False"))
		}
	}

	keys := maps.Keys(info.Custom)
	sort.Strings(keys)
	for _, k := range keys {
		d.Set(Name(k), TextString(info.Custom[k]))
	}
	return d
}

func setIfNonEmpty(d *Dict, key Name, val string) {
	if val != "" {
		d.Set(key, TextString(val))
	}
}
