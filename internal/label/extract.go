package label

import (
	"regexp"
	"strings"
)

// Field defaults. Extraction rules never fail hard; a rule that does not
// match resolves to one of these.
const (
	ValueNone     = "None"
	ValueUnknown  = "Unknown"
	ValueNotFound = "Not found"

	ModeCOD     = "COD"
	ModePrepaid = "PREPAID"
)

var (
	// Indian mobile number, optional country prefix with optional separator.
	phoneRe = regexp.MustCompile(`(?:\+?91[\s-]?)?[6-9]\d{9}`)

	// The address portion of a block ends where the courier boilerplate starts.
	addressEndRe = regexp.MustCompile(`(?i)If undelivered|COD|Prepaid|Pickup`)

	// Most-specific token first: naive alternation must not let "XL"
	// pre-empt "XXL" or "6XL".
	sizeRe = regexp.MustCompile(`\b(6XL|5XL|4XL|XXXL|XXL|XL|L|M|S|XS)\b`)

	totalRe = regexp.MustCompile(`Rs\.\d+\.\d{2}`)
	modeRe  = regexp.MustCompile(`(?i)(COD|Prepaid)\s*:`)
)

// Extractor turns segmented order blocks into OrderRecords. It holds no
// state; extraction is a pure function of the input text.
type Extractor struct{}

// NewExtractor creates a new field extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractRecords segments the raw text of one document and extracts a record
// per block. Blocks without a valid phone number are dropped.
func (e *Extractor) ExtractRecords(text string) []OrderRecord {
	return e.RecordsFromBlocks(SegmentBlocks(text))
}

// RecordsFromBlocks extracts a record per already-segmented block. The
// record list never exceeds the block list; blocks without a valid phone
// number produce no record.
func (e *Extractor) RecordsFromBlocks(blocks []string) []OrderRecord {
	records := make([]OrderRecord, 0, len(blocks))
	for _, block := range blocks {
		rec := e.ExtractBlock(block)
		if rec.Phone == ValueNone {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// ExtractBlock applies the field rules to a single order block. Each rule is
// independent and tolerant of failure; a miss yields the field's default.
func (e *Extractor) ExtractBlock(block string) OrderRecord {
	rec := OrderRecord{
		Name:     ValueUnknown,
		Phone:    ValueNone,
		Address1: ValueNone,
		Address2: ValueNone,
		City:     ValueUnknown,
		State:    ValueUnknown,
		Pincode:  ValueUnknown,
		Size:     ValueNotFound,
		Total:    ValueNotFound,
		Mode:     ValueUnknown,
	}

	if phone, ok := matchPhone(block); ok {
		rec.Phone = phone
	}

	lines := splitLines(addressSpan(block))
	if len(lines) > 0 {
		rec.Name = TitleCase(lines[0])
	}
	rec.Address1, rec.Address2 = addressParts(lines)
	rec.City, rec.State, rec.Pincode = lastLineParts(lines)

	if size, ok := matchSize(block); ok {
		rec.Size = size
	}
	if total, ok := matchTotal(block); ok {
		rec.Total = total
	}
	if mode, ok := matchMode(block); ok {
		rec.Mode = mode
	}

	return rec
}

// matchPhone finds the first plausible mobile number in the block.
func matchPhone(block string) (string, bool) {
	m := phoneRe.FindString(block)
	if m == "" {
		return "", false
	}
	return m, true
}

// addressSpan cuts the block down to its address-relevant prefix. If no
// boundary phrase occurs, the whole block is the span.
func addressSpan(block string) string {
	if loc := addressEndRe.FindStringIndex(block); loc != nil {
		return strings.TrimSpace(block[:loc[0]])
	}
	return strings.TrimSpace(block)
}

// addressParts derives the two address lines from the span's middle lines.
// With four or more lines everything between name and last line is split
// into two halves, first half rounded up. With three or two lines only the
// second line is usable.
func addressParts(lines []string) (string, string) {
	switch {
	case len(lines) >= 4:
		middle := lines[1 : len(lines)-1]
		mid := (len(middle) + 1) / 2
		return strings.Join(middle[:mid], ", "), strings.Join(middle[mid:], ", ")
	case len(lines) == 3 || len(lines) == 2:
		return lines[1], ValueNone
	default:
		return ValueNone, ValueNone
	}
}

// lastLineParts reads city, state and pincode off the end of the block's
// last line. Labels put them as the last three comma-separated parts; a
// shorter last line leniently defaults the missing positions.
func lastLineParts(lines []string) (city, state, pincode string) {
	city, state, pincode = ValueUnknown, ValueUnknown, ValueUnknown
	if len(lines) == 0 {
		return
	}
	parts := strings.Split(lines[len(lines)-1], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	n := len(parts)
	if n >= 3 && parts[n-3] != "" {
		city = parts[n-3]
	}
	if n >= 2 && parts[n-2] != "" {
		state = parts[n-2]
	}
	if n >= 1 && parts[n-1] != "" {
		pincode = parts[n-1]
	}
	return
}

// matchSize finds the first garment size token in the block.
func matchSize(block string) (string, bool) {
	m := sizeRe.FindStringSubmatch(block)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchTotal finds the authoritative total. Blocks may carry an item
// subtotal before the grand total, so the last currency match wins.
func matchTotal(block string) (string, bool) {
	all := totalRe.FindAllString(block, -1)
	if len(all) == 0 {
		return "", false
	}
	return all[len(all)-1], true
}

// matchMode reads the payment mode, which appears as "COD:" or "Prepaid:".
func matchMode(block string) (string, bool) {
	m := modeRe.FindStringSubmatch(block)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}
