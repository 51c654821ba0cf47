package label

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Service handles label corpus operations by orchestrating the extraction,
// filtering and page-level components. Documents are always processed
// strictly sequentially, one file fully handled before the next, so that
// dedup state and result ordering stay deterministic.
type Service struct {
	maxFileSize int64
	reader      *Reader
	extractor   *Extractor
	validator   *Validator
	search      *Search
	pages       *Pages
}

// NewService creates a new label service with all components
func NewService(maxFileSize int64) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		reader:      NewReader(maxFileSize),
		extractor:   NewExtractor(),
		validator:   NewValidator(maxFileSize),
		search:      NewSearch(maxFileSize),
		pages:       NewPages(),
	}
}

// ExtractFile extracts order records from a single label PDF
func (s *Service) ExtractFile(req ExtractFileRequest) (*ExtractFileResult, error) {
	pageTexts, err := s.reader.ExtractPageTexts(req.Path)
	if err != nil {
		return nil, err
	}

	blocks := SegmentBlocks(DocumentText(pageTexts))
	records := s.extractor.RecordsFromBlocks(blocks)

	return &ExtractFileResult{
		Path:    req.Path,
		Pages:   len(pageTexts),
		Blocks:  len(blocks),
		Records: records,
	}, nil
}

// ExtractBatch extracts order records from several PDFs in the given order.
// A file that cannot be read is reported in its outcome and does not abort
// the rest of the batch. Statistics are computed over the combined records.
func (s *Service) ExtractBatch(req ExtractBatchRequest) (*ExtractBatchResult, error) {
	if len(req.Paths) == 0 {
		return nil, invalidArgf("no input files")
	}

	result := &ExtractBatchResult{
		Files: make([]FileOutcome, 0, len(req.Paths)),
	}

	for _, path := range req.Paths {
		outcome := FileOutcome{Path: path}

		fileResult, err := s.ExtractFile(ExtractFileRequest{Path: path})
		if err != nil {
			outcome.Error = err.Error()
			result.Files = append(result.Files, outcome)
			continue
		}

		outcome.Pages = fileResult.Pages
		outcome.Records = len(fileResult.Records)
		result.Files = append(result.Files, outcome)
		result.Records = append(result.Records, fileResult.Records...)
	}

	result.Stats = ComputeStatistics(result.Records)
	return result, nil
}

// MergeFiles concatenates the input PDFs into one document in input order
func (s *Service) MergeFiles(req MergeFilesRequest) (*MergeFilesResult, error) {
	if len(req.Paths) < 2 {
		return nil, invalidArgf("merge requires at least 2 files, got %d", len(req.Paths))
	}
	if req.OutputPath == "" {
		return nil, invalidArgf("output path cannot be empty")
	}

	for _, path := range req.Paths {
		if err := s.validator.ValidateFile(path); err != nil {
			return nil, err
		}
	}

	if err := s.pages.Merge(req.Paths, req.OutputPath); err != nil {
		return nil, err
	}

	pageCount, err := s.pages.Count(req.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("merged file written but unreadable: %w", err)
	}

	return &MergeFilesResult{
		OutputPath: req.OutputPath,
		InputFiles: len(req.Paths),
		Pages:      pageCount,
	}, nil
}

// FilterUniqueCOD builds a COD-only, duplicate-free PDF from the input
// documents. Pages carrying the prepaid skip phrase are dropped first; the
// remaining pages are deduplicated by address fingerprint across all input
// documents, first occurrence kept, original order preserved.
func (s *Service) FilterUniqueCOD(req FilterUniqueCODRequest) (*FilterUniqueCODResult, error) {
	if len(req.Paths) == 0 {
		return nil, invalidArgf("no input files")
	}
	if req.OutputPath == "" {
		return nil, invalidArgf("output path cannot be empty")
	}

	docs := make([][]string, len(req.Paths))
	for docIdx, path := range req.Paths {
		pageTexts, err := s.reader.ExtractPageTexts(path)
		if err != nil {
			// An unreadable document would leave a hole in the output;
			// abandon the whole operation rather than emit a partial PDF.
			return nil, err
		}
		docs[docIdx] = pageTexts
	}

	filter := NewDedupeFilter()
	result := &FilterUniqueCODResult{
		OutputPath: req.OutputPath,
		InputFiles: len(req.Paths),
		KeptPages:  filter.FilterPages(docs),
	}
	result.SkippedPrepaid = filter.SkippedPrepaid()
	result.SkippedDuplicate = filter.SkippedDuplicate()

	if len(result.KeptPages) == 0 {
		return nil, fmt.Errorf("no pages left after filtering %d files", len(req.Paths))
	}

	keptByDoc := keptPagesByDoc(result.KeptPages, len(req.Paths))
	if err := s.assembleKeptPages(req.Paths, keptByDoc, req.OutputPath); err != nil {
		return nil, err
	}

	return result, nil
}

// keptPagesByDoc regroups kept pages as one-based page numbers per document,
// indexed like the input path list. FilterPages emits pages in document then
// page order, so each per-document list comes out already sorted.
func keptPagesByDoc(kept []KeptPage, docCount int) [][]int {
	byDoc := make([][]int, docCount)
	for _, page := range kept {
		byDoc[page.DocIndex] = append(byDoc[page.DocIndex], page.PageIndex+1)
	}
	return byDoc
}

// assembleKeptPages collects the kept pages of each document into temporary
// files and merges them into outputPath in document order.
func (s *Service) assembleKeptPages(paths []string, keptByDoc [][]int, outputPath string) error {
	tmpDir, err := os.MkdirTemp("", "labelkit-cod-")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	var partPaths []string
	for docIdx, pageNumbers := range keptByDoc {
		if len(pageNumbers) == 0 {
			continue
		}

		partPath := filepath.Join(tmpDir, fmt.Sprintf("part_%d.pdf", docIdx))
		if err := s.pages.Collect(paths[docIdx], partPath, pageNumbers); err != nil {
			return err
		}
		partPaths = append(partPaths, partPath)
	}

	return s.pages.Merge(partPaths, outputPath)
}

// SplitFile splits a PDF into parts of at most PagesPerPart pages each.
// The group size is validated before any page processing happens.
func (s *Service) SplitFile(req SplitFileRequest) (*SplitFileResult, error) {
	if req.PagesPerPart <= 0 {
		return nil, invalidArgf("pages per split must be a positive integer, got %d", req.PagesPerPart)
	}

	if err := s.validator.ValidateFile(req.Path); err != nil {
		return nil, err
	}

	pageCount, err := s.pages.Count(req.Path)
	if err != nil {
		return nil, err
	}

	ranges, err := SplitPages(pageCount, req.PagesPerPart)
	if err != nil {
		return nil, err
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(req.Path)
	}
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("cannot create output directory %s: %w", outputDir, err)
	}

	stem := strings.TrimSuffix(filepath.Base(req.Path), filepath.Ext(req.Path))
	parts := make([]string, 0, len(ranges))
	for i, rng := range ranges {
		partPath := filepath.Join(outputDir, fmt.Sprintf("%s_part_%d.pdf", stem, i+1))
		if err := s.pages.CollectRange(req.Path, partPath, rng.Start+1, rng.End); err != nil {
			return nil, err
		}
		parts = append(parts, partPath)
	}

	return &SplitFileResult{
		Path:      req.Path,
		OutputDir: outputDir,
		Pages:     pageCount,
		Ranges:    ranges,
		Parts:     parts,
	}, nil
}

// SearchDirectory finds label PDFs in a directory
func (s *Service) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	return s.search.SearchDirectory(req)
}

// FindPDFsInDirectory finds all label PDFs in a directory without filtering
func (s *Service) FindPDFsInDirectory(directory string) ([]FileInfo, error) {
	return s.search.FindPDFsInDirectory(directory)
}

// ComputeStatistics derives aggregate statistics from a record list
func (s *Service) ComputeStatistics(records []OrderRecord) Statistics {
	return ComputeStatistics(records)
}

// IsValidPDF performs a quick validation check on a file
func (s *Service) IsValidPDF(filePath string) bool {
	return s.validator.IsValidPDF(filePath)
}

// GetMaxFileSize returns the maximum file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}
