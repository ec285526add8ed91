package pdf

import (
	"fmt"
	"sort"
)

// generateFileID derives the first file identifier (the /ID array's first
// element) from info: the MD5 digest of the creation time, in
// milliseconds, followed by every populated Info field rendered as
// "key: value" lines in a fixed order. A document that is otherwise
// identical but authored at a different moment gets a different ID, which
// is the point: it lets consumers detect that two files with the same
// content are still distinct revisions.
func generateFileID(info Info) []byte {
	ms := info.creationDate().UnixMilli()
	parts := [][]byte{[]byte(fmt.Sprintf("%d\n", ms))}

	add := func(key, val string) {
		if val != "" {
			parts = append(parts, []byte(fmt.Sprintf("%s: %s\n", key, val)))
		}
	}
	add("Title", info.Title)
	add("Author", info.Author)
	add("Subject", info.Subject)
	add("Keywords", info.Keywords)
	add("Creator", info.Creator)
	add("Producer", info.Producer)
	if !info.ModDate.IsZero() {
		add("ModDate", fmt.Sprintf("%d", info.ModDate.UnixMilli()))
	}
	if info.Trapped != nil {
		if *info.Trapped {
			add("Trapped", "True")
		} else {
			add("Trapped", "False")
		}
	}

	keys := make([]string, 0, len(info.Custom))
	for k := range info.Custom {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		add(k, info.Custom[k])
	}

	return md5Sum(parts...)
}
