package receipt

import "strings"

// unsafeChars are stripped from free-text fields before the receipt reaches
// scoring or storage, so the text is safe in downstream textual contexts.
const unsafeChars = `'";`

func sanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeChars, r) {
			return -1
		}
		return r
	}, s)
}

// SanitizeReceipt removes unsafe characters from the retailer, purchase time,
// and every item description. Numeric and date fields are untouched. It never
// fails.
func SanitizeReceipt(r *Receipt) {
	r.Retailer = sanitizeString(r.Retailer)
	r.PurchaseTime = sanitizeString(r.PurchaseTime)
	for i := range r.Items {
		r.Items[i].ShortDescription = sanitizeString(r.Items[i].ShortDescription)
	}
}
