package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	// Extraction Tools
	LabelExtractFileDescription = `Extract structured shipping-order records from a single label PDF.

**When to use:** Need the customer, address and order fields from one label document.

**Why it's useful:** Turns free-form label text into clean records: name, phone, two address lines, city, state, pincode, garment size, order total and payment mode.

**Examples:**
• Inspect a fresh download: "Extract orders from today-labels.pdf and show me the records"
• Verify a single customer: "Get the order details from labels-batch-3.pdf"
• Spot-check parsing: "Extract labels.pdf and tell me how many blocks had no phone number"

**Common workflows:**
1. Daily Intake: Extract file → Review records → Export to workbook
2. Debugging: Extract file → Compare block count to record count → Inspect dropped blocks

**Best practices:** Use absolute paths. A block without a valid phone number produces no record; the response reports how many blocks were dropped.`

	LabelExtractDirectoryDescription = `Extract order records from every label PDF in a directory and compute statistics.

**When to use:** Processing a whole day's or week's worth of label downloads at once.

**Why it's useful:** One call walks the corpus, parses every document, combines the records and summarizes sizes, revenue and COD/prepaid counts. A file that fails to parse is reported and skipped; the rest of the corpus still processes.

**Examples:**
• Daily totals: "Extract all labels in ~/labels/monday and give me the statistics"
• Size planning: "How many XL and XXL orders are in the labels directory?"
• Revenue check: "What is the total order value across all label PDFs?"

**Common workflows:**
1. Batch Intake: Extract directory → Review per-file outcomes → Export workbook
2. Fulfilment Planning: Extract directory → Read size counts → Pick stock

**Best practices:** Omit the directory argument to use the configured corpus directory.`

	// Export Tools
	LabelExportXLSXDescription = `Extract records from every label PDF in a directory and write them to an XLSX workbook.

**When to use:** Need the order list in a spreadsheet for packing, sharing or reconciliation.

**Why it's useful:** Produces one row per order with all extracted fields, ready for filtering and sorting in any spreadsheet tool.

**Examples:**
• Packing list: "Export all orders in the labels directory to packing.xlsx"
• Records hand-off: "Write this week's orders to a workbook for the accounts team"

**Common workflows:**
1. Fulfilment: Extract directory → Export workbook → Print packing list
2. Reconciliation: Export workbook → Match against payment report

**Best practices:** The output path must end in .xlsx and be writable; existing files are overwritten.`

	// Print-run Tools
	LabelMergeDescription = `Merge all label PDFs in a directory into one PDF, in filename order.

**When to use:** Printing many small label downloads as a single job.

**Why it's useful:** One merged document prints in a deterministic order instead of juggling dozens of files.

**Examples:**
• Print prep: "Merge everything in ~/labels/monday into monday-print.pdf"

**Common workflows:**
1. Print Run: Merge directory → Split into parts → Send parts to printer

**Best practices:** At least two input files are required; every input is validated before any output is written.`

	LabelFilterUniqueCODDescription = `Build a COD-only PDF from all label PDFs in a directory, dropping prepaid pages and duplicate shipping labels.

**When to use:** Preparing a cash-collection print run that must not contain prepaid labels or repeated addresses.

**Why it's useful:** Prepaid pages ("Prepaid: Do not collect cash") are removed outright, and pages shipping to the same normalized address are kept only once, first occurrence wins, original order preserved.

**Examples:**
• COD run: "Build cod-only.pdf from the labels directory without duplicates"
• Duplicate audit: "How many duplicate labels were dropped from this batch?"

**Common workflows:**
1. COD Print Run: Filter unique COD → Split into parts → Print
2. Audit: Filter unique COD → Compare kept/skipped counts to extraction statistics

**Best practices:** The operation refuses to run if any input document is unreadable, so the output never silently misses pages.`

	LabelSplitDescription = `Split a label PDF into parts with a fixed number of pages each.

**When to use:** A merged print job is too large for one printer run or one upload.

**Why it's useful:** Produces contiguous parts named <stem>_part_1.pdf, <stem>_part_2.pdf and so on, last part possibly shorter, covering every page exactly once.

**Examples:**
• Printer limit: "Split monday-print.pdf into parts of 200 pages"
• Sharing: "Cut big-batch.pdf into 50-page chunks for the courier portal"

**Common workflows:**
1. Print Run: Merge → Split into printer-sized parts → Print each part

**Best practices:** pages_per_part must be a positive integer; the output directory defaults to the input file's directory.`

	// Utility Tools
	LabelServerInfoDescription = `Get server information, available tools, corpus directory contents, and usage guidance.

**When to use:** Starting a session, or when unsure which label PDFs are available.

**Why it's useful:** Lists the configured corpus directory with its label PDFs and a short guide to the extraction, export and print-run tools.

**Examples:**
• Orientation: "What label files do you have and what can you do with them?"

**Best practices:** Call this first in a new session to see what the corpus holds.`
)
