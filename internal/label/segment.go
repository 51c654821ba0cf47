package label

import "regexp"

// blockMarker starts every order block on a Meesho-style shipping label.
var blockMarker = regexp.MustCompile(`(?i)Customer Address`)

// SegmentBlocks splits a document's full text into one segment per order.
// The text before the first marker is preamble and carries no order data,
// so it is dropped. A document without the marker yields no blocks, which
// is a valid outcome, not an error.
func SegmentBlocks(text string) []string {
	parts := blockMarker.Split(text, -1)
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}
