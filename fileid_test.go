package pdf

import (
	"testing"
	"time"
)

func TestGenerateFileIDLength(t *testing.T) {
	id := generateFileID(Info{Title: "x"})
	if len(id) != 16 {
		t.Fatalf("len(id) = %d, want 16", len(id))
	}
}

func TestGenerateFileIDDeterministic(t *testing.T) {
	info := Info{
		Title:        "Report",
		Author:       "Someone",
		CreationDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	id1 := generateFileID(info)
	id2 := generateFileID(info)
	if !bytesEqual(id1, id2) {
		t.Error("generateFileID should be deterministic for identical Info values")
	}
}

func TestGenerateFileIDSensitiveToContent(t *testing.T) {
	base := Info{CreationDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	other := base
	other.Title = "different"

	if bytesEqual(generateFileID(base), generateFileID(other)) {
		t.Error("changing Info content should change the file ID")
	}
}

func TestGenerateFileIDSensitiveToModDateAndTrapped(t *testing.T) {
	base := Info{CreationDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}

	withModDate := base
	withModDate.ModDate = time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	if bytesEqual(generateFileID(base), generateFileID(withModDate)) {
		t.Error("setting ModDate should change the file ID")
	}

	trueVal, falseVal := true, false
	withTrappedTrue := base
	withTrappedTrue.Trapped = &trueVal
	withTrappedFalse := base
	withTrappedFalse.Trapped = &falseVal
	if bytesEqual(generateFileID(base), generateFileID(withTrappedTrue)) {
		t.Error("setting Trapped should change the file ID")
	}
	if bytesEqual(generateFileID(withTrappedTrue), generateFileID(withTrappedFalse)) {
		t.Error("Trapped=true and Trapped=false should produce different file IDs")
	}
}
