package label

import (
	"regexp"
	"strings"
)

// SkipPhrase marks a prepaid label. Pages containing it are discarded
// unconditionally when building a COD-only document.
const SkipPhrase = "Prepaid: Do not collect cash"

// fingerprintLen bounds the fingerprint so minor trailing differences on
// otherwise identical labels do not defeat deduplication.
const fingerprintLen = 120

var (
	// Label boilerplate that follows the address. Everything from each of
	// these phrases onward is stripped before fingerprinting.
	boilerplateRe = regexp.MustCompile(`(?i)Total.*|Order\s*No.*|SKU.*|If\s*undelivered.*|COD.*|Prepaid.*`)

	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]`)
)

// Fingerprint reduces a page's text to a normalized key over its address
// content. Two labels shipping to the same address produce the same
// fingerprint regardless of totals, order numbers or spacing.
func Fingerprint(pageText string) string {
	norm := NormalizeWhitespace(pageText)

	addressPart := norm
	if _, after, found := strings.Cut(norm, "Customer Address"); found {
		addressPart = after
	}

	addressPart = boilerplateRe.ReplaceAllString(addressPart, "")
	addressPart = strings.ToLower(addressPart)
	addressPart = nonAlnumRe.ReplaceAllString(addressPart, "")

	if len(addressPart) > fingerprintLen {
		addressPart = addressPart[:fingerprintLen]
	}
	return addressPart
}

// DedupeFilter suppresses prepaid pages and repeated shipping labels. The
// seen set lives in the filter value, so one filter instance covers exactly
// one filtering operation across any number of documents.
type DedupeFilter struct {
	seen             map[string]struct{}
	skippedPrepaid   int
	skippedDuplicate int
}

// NewDedupeFilter creates a filter with an empty seen set
func NewDedupeFilter() *DedupeFilter {
	return &DedupeFilter{
		seen: make(map[string]struct{}),
	}
}

// Keep decides whether a page belongs in the COD-only output. The skip
// phrase is checked before fingerprinting, so a prepaid page never claims a
// fingerprint that a later COD page would then be deduplicated against.
func (f *DedupeFilter) Keep(pageText string) bool {
	norm := NormalizeWhitespace(pageText)
	if strings.Contains(norm, SkipPhrase) {
		f.skippedPrepaid++
		return false
	}

	key := Fingerprint(pageText)
	if _, dup := f.seen[key]; dup {
		f.skippedDuplicate++
		return false
	}
	f.seen[key] = struct{}{}
	return true
}

// FilterPages runs the filter over per-document page texts in document
// order, then page order. A single monotonic pass; the first page with a
// given fingerprint is the one kept.
func (f *DedupeFilter) FilterPages(docs [][]string) []KeptPage {
	var kept []KeptPage
	for docIdx, pages := range docs {
		for pageIdx, text := range pages {
			if f.Keep(text) {
				kept = append(kept, KeptPage{DocIndex: docIdx, PageIndex: pageIdx})
			}
		}
	}
	return kept
}

// SkippedPrepaid returns the number of pages dropped for the skip phrase
func (f *DedupeFilter) SkippedPrepaid() int {
	return f.skippedPrepaid
}

// SkippedDuplicate returns the number of pages dropped as duplicates
func (f *DedupeFilter) SkippedDuplicate() int {
	return f.skippedDuplicate
}
