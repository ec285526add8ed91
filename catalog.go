package pdf

import "golang.org/x/text/language"

// normalizeLang parses tag as a BCP 47 language tag and returns its
// canonical string form, ready to be stored in the catalog's /Lang entry.
func normalizeLang(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}
