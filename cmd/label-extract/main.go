package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/labelkit/labelkit/internal/export"
	"github.com/labelkit/labelkit/internal/label"
)

const defaultMaxFileSize = 100 * 1024 * 1024

var (
	outputFormat = flag.String("format", "text", "Output format: text, json")
	xlsxPath     = flag.String("xlsx", "", "Write extracted orders to an XLSX workbook at the given path")
	withStats    = flag.Bool("stats", false, "Print order statistics after the records")
	help         = flag.Bool("help", false, "Show help message")
)

// ExtractionResult is the complete output of a run, one entry per input file.
type ExtractionResult struct {
	Files   []label.FileOutcome `json:"files"`
	Records []label.OrderRecord `json:"records"`
	Stats   *label.Statistics   `json:"stats,omitempty"`
}

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one PDF file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	paths := make([]string, 0, flag.NArg())
	for _, arg := range flag.Args() {
		absPath, err := filepath.Abs(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot resolve path %s: %v\n", arg, err)
			os.Exit(1)
		}
		paths = append(paths, absPath)
	}

	service := label.NewService(defaultMaxFileSize)

	batch, err := service.ExtractBatch(label.ExtractBatchRequest{Paths: paths})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting labels: %v\n", err)
		os.Exit(1)
	}

	result := &ExtractionResult{
		Files:   batch.Files,
		Records: batch.Records,
	}
	if *withStats {
		result.Stats = &batch.Stats
	}

	if *xlsxPath != "" {
		if err := writeWorkbook(*xlsxPath, batch.Records); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing workbook: %v\n", err)
			os.Exit(1)
		}
	}

	if err := outputResults(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(1)
	}
}

func writeWorkbook(path string, records []label.OrderRecord) error {
	exporter := export.NewService(nil)
	data, err := exporter.OrdersXLSX(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func outputResults(result *ExtractionResult) error {
	switch *outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "text":
		return outputText(result)
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputText(result *ExtractionResult) error {
	for _, file := range result.Files {
		if file.Error != "" {
			fmt.Printf("%s: FAILED (%s)\n", file.Path, file.Error)
			continue
		}
		fmt.Printf("%s: %d pages, %d orders\n", file.Path, file.Pages, file.Records)
	}
	fmt.Println()

	if len(result.Records) == 0 {
		fmt.Println("No orders found.")
		return nil
	}

	for i, rec := range result.Records {
		fmt.Printf("[%d] %s\n", i+1, rec.Name)
		fmt.Printf("    Phone: %s\n", rec.Phone)
		fmt.Printf("    Address: %s\n", rec.Address1)
		if rec.Address2 != "" {
			fmt.Printf("             %s\n", rec.Address2)
		}
		fmt.Printf("    City/State/Pincode: %s / %s / %s\n", rec.City, rec.State, rec.Pincode)
		fmt.Printf("    Size: %s  Total: %s  Mode: %s\n", rec.Size, rec.Total, rec.Mode)
		fmt.Println()
	}

	if result.Stats != nil {
		printStats(result.Stats)
	}

	return nil
}

func printStats(stats *label.Statistics) {
	fmt.Println("STATISTICS")
	fmt.Println("==========")
	fmt.Printf("Total orders: %d\n", stats.TotalOrders)
	fmt.Printf("Total value: Rs.%s\n", stats.TotalPrice)
	fmt.Printf("COD: %d (unique %d, duplicate %d)\n", stats.CODCount, stats.CODUniqueCount, stats.CODDuplicateCount)
	fmt.Printf("Prepaid: %d\n", stats.PrepaidCount)
	if len(stats.SizeCount) > 0 {
		fmt.Println("Sizes:")
		for size, count := range stats.SizeCount {
			fmt.Printf("  %s: %d\n", size, count)
		}
	}
}

func printHelp() {
	fmt.Println("label-extract - Extract structured order data from shipping label PDFs")
	fmt.Println()
	fmt.Println("Reads one or more label PDFs, segments each into per-order blocks and")
	fmt.Println("prints the parsed records. Files that cannot be read are reported and")
	fmt.Println("skipped; valid files in the same run are still processed.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format  Output format: text (default), json")
	fmt.Println("  -xlsx    Also write the records to an XLSX workbook at the given path")
	fmt.Println("  -stats   Print size, revenue and payment-mode statistics")
	fmt.Println("  -help    Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  label-extract labels.pdf")
	fmt.Println("  label-extract -stats -format json labels1.pdf labels2.pdf")
	fmt.Println("  label-extract -xlsx orders.xlsx labels.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  label-extract [OPTIONS] <pdf_file> [<pdf_file>...]")
}

func init() {
	flag.Usage = func() {
		printHelp()
	}
}
