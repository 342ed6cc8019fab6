package fontkit

import "golang.org/x/text/language"

// ArabicTag is the language tag that triggers Arabic font substitution.
const ArabicTag = "ar"

var arabicTag = language.Make(ArabicTag)

// isArabic reports whether tag is exactly ArabicTag once canonicalized,
// so "AR" matches but regional or extended tags such as "ar-SA" do not.
// Tags that do not parse never match.
func isArabic(tag string) bool {
	if tag == "" {
		return false
	}
	t, err := language.Parse(tag)
	return err == nil && t == arabicTag
}
