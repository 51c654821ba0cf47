package label

// OrderRecord is one shipping order recovered from a label block.
// Every field is defaulted; a record only exists when a phone number
// was found in its source block.
type OrderRecord struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Size     string `json:"size"`
	Total    string `json:"total"`
	Mode     string `json:"mode"`
}

// Statistics summarizes a list of order records. All values are
// re-derivable from the record list at any time.
type Statistics struct {
	TotalOrders       int            `json:"total_orders"`
	SizeCount         map[string]int `json:"size_count"`
	TotalPrice        string         `json:"total_price"`
	CODCount          int            `json:"cod_count"`
	PrepaidCount      int            `json:"prepaid_count"`
	CODDuplicateCount int            `json:"cod_duplicate_count"`
	CODUniqueCount    int            `json:"cod_unique_count"`
}

// PageRange is a half-open [Start, End) range of zero-based page indices.
type PageRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// KeptPage identifies a page that survived the unique-COD filter.
// DocIndex addresses the input document list, PageIndex is zero-based
// within that document.
type KeptPage struct {
	DocIndex  int `json:"doc_index"`
	PageIndex int `json:"page_index"`
}

// FileInfo represents information about a label PDF file
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request Types

// ExtractFileRequest represents a request to extract order records from one PDF
type ExtractFileRequest struct {
	Path string `json:"path"`
}

// ExtractBatchRequest represents a request to extract order records from
// several PDFs in order
type ExtractBatchRequest struct {
	Paths []string `json:"paths"`
}

// MergeFilesRequest represents a request to merge PDFs into one document
type MergeFilesRequest struct {
	Paths      []string `json:"paths"`
	OutputPath string   `json:"output_path"`
}

// FilterUniqueCODRequest represents a request to build a COD-only,
// duplicate-free PDF from the given documents
type FilterUniqueCODRequest struct {
	Paths      []string `json:"paths"`
	OutputPath string   `json:"output_path"`
}

// SplitFileRequest represents a request to split a PDF into fixed-size parts
type SplitFileRequest struct {
	Path         string `json:"path"`
	PagesPerPart int    `json:"pages_per_part"`
	OutputDir    string `json:"output_dir"`
}

// SearchDirectoryRequest represents a request to find label PDFs in a directory
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// Response Types

// ExtractFileResult represents the records extracted from one PDF
type ExtractFileResult struct {
	Path    string        `json:"path"`
	Pages   int           `json:"pages"`
	Blocks  int           `json:"blocks"`
	Records []OrderRecord `json:"records"`
}

// FileOutcome reports how a single file fared inside a batch
type FileOutcome struct {
	Path    string `json:"path"`
	Pages   int    `json:"pages"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// ExtractBatchResult represents the combined outcome of a batch extraction
type ExtractBatchResult struct {
	Files   []FileOutcome `json:"files"`
	Records []OrderRecord `json:"records"`
	Stats   Statistics    `json:"stats"`
}

// MergeFilesResult represents the result of a merge operation
type MergeFilesResult struct {
	OutputPath string `json:"output_path"`
	InputFiles int    `json:"input_files"`
	Pages      int    `json:"pages"`
}

// FilterUniqueCODResult represents the result of the unique-COD filter
type FilterUniqueCODResult struct {
	OutputPath       string     `json:"output_path"`
	InputFiles       int        `json:"input_files"`
	KeptPages        []KeptPage `json:"kept_pages"`
	SkippedPrepaid   int        `json:"skipped_prepaid"`
	SkippedDuplicate int        `json:"skipped_duplicate"`
}

// SplitFileResult represents the result of a split operation
type SplitFileResult struct {
	Path      string      `json:"path"`
	OutputDir string      `json:"output_dir"`
	Pages     int         `json:"pages"`
	Ranges    []PageRange `json:"ranges"`
	Parts     []string    `json:"parts"`
}

// SearchDirectoryResult represents the result of a directory search
type SearchDirectoryResult struct {
	Directory   string     `json:"directory"`
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	SearchQuery string     `json:"search_query,omitempty"`
}
