package label

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Pages wraps the pdfcpu page-level operations: page counting, merging
// whole documents, and collecting selected pages into a new document.
type Pages struct {
	conf *model.Configuration
}

// NewPages creates a page operations handler with relaxed validation, since
// courier-generated labels are not always strictly conformant PDFs.
func NewPages() *Pages {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Pages{conf: conf}
}

// Count returns the number of pages in the document
func (p *Pages) Count(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	ctx, err := api.ReadContext(f, p.conf)
	if err != nil {
		return 0, &ExtractionError{Path: path, Err: fmt.Errorf("failed to read PDF context: %w", err)}
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, &ExtractionError{Path: path, Err: fmt.Errorf("failed to ensure page count: %w", err)}
	}

	return ctx.PageCount, nil
}

// Merge concatenates the input documents into outPath in input order
func (p *Pages) Merge(inPaths []string, outPath string) error {
	if err := api.MergeCreateFile(inPaths, outPath, false, p.conf); err != nil {
		return fmt.Errorf("failed to merge %d files into %s: %w", len(inPaths), outPath, err)
	}
	return nil
}

// Collect writes the given one-based pages of inPath to outPath, preserving
// their relative order.
func (p *Pages) Collect(inPath, outPath string, pageNumbers []int) error {
	if len(pageNumbers) == 0 {
		return fmt.Errorf("no pages selected from %s", inPath)
	}

	selected := make([]string, len(pageNumbers))
	for i, n := range pageNumbers {
		selected[i] = strconv.Itoa(n)
	}

	if err := api.CollectFile(inPath, outPath, selected, p.conf); err != nil {
		return fmt.Errorf("failed to collect pages from %s: %w", inPath, err)
	}
	return nil
}

// CollectRange writes the one-based page range [from, to] of inPath to outPath
func (p *Pages) CollectRange(inPath, outPath string, from, to int) error {
	selected := []string{fmt.Sprintf("%d-%d", from, to)}
	if err := api.CollectFile(inPath, outPath, selected, p.conf); err != nil {
		return fmt.Errorf("failed to collect pages %d-%d from %s: %w", from, to, inPath, err)
	}
	return nil
}
