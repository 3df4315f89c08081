package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/RyanZhou416/QuizForge/internal/config"
	"github.com/RyanZhou416/QuizForge/internal/loader"
)

// JSONToDBCommand converts quiz bank documents into SQLite stores
type JSONToDBCommand struct {
	Invocation loader.Invocation

	out io.Writer
}

func NewJSONToDBCommand() *JSONToDBCommand {
	return &JSONToDBCommand{out: os.Stdout}
}

// ParseFlags reads positional documents, an optional output path and -i/--images
// directories. Flags may appear anywhere, so the flag package is not used here.
func (cmd *JSONToDBCommand) ParseFlags(args []string) error {
	for _, arg := range args {
		if arg == "-h" || arg == "-help" || arg == "--help" {
			printJSONToDBUsage()
			os.Exit(0)
		}
	}

	if len(args) == 0 {
		printJSONToDBUsage()
		return fmt.Errorf("at least one document is required")
	}

	inv, err := loader.ParseArgs(args)
	if err != nil {
		return err
	}
	cmd.Invocation = inv
	return nil
}

func printJSONToDBUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s json-to-db <doc>[.json ...] [outputPath] [-i|--images dir]...\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Convert quiz bank documents (.json, .yaml, .yml) into SQLite stores.\n")
	fmt.Fprintf(os.Stderr, "Referenced images are embedded as base64 data URIs.\n\n")
	fmt.Fprintf(os.Stderr, "An argument with a document extension is an input; the first other argument is\n")
	fmt.Fprintf(os.Stderr, "also an input (for glob patterns) and any later one is the output path.\n")
	fmt.Fprintf(os.Stderr, "The output path is only used when exactly one document is converted.\n\n")
	fmt.Fprintf(os.Stderr, "Images are searched in -i directories, then QUIZFORGE_IMAGE_DIRS, then the\n")
	fmt.Fprintf(os.Stderr, "document's own directory.\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  %s json-to-db input.json              -> generates input.db\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s json-to-db input.json output.db    -> generates output.db\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s json-to-db input.json -i images/   -> resolve images from images/\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s json-to-db '*.json'                -> batch convert all JSON files\n", os.Args[0])
}

func (cmd *JSONToDBCommand) Run() error {
	cfg := config.NewConfig()
	l := loader.New(loader.ConfigFrom(cfg, cmd.Invocation.ImageDirs), cmd.out)

	report, err := l.Run(cmd.Invocation)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.out, "\n=== Summary ===")
	fmt.Fprintf(cmd.out, "Converted: %d\n", len(report.Converted))
	if len(report.Skipped) > 0 {
		fmt.Fprintf(cmd.out, "Skipped (no questions): %d\n", len(report.Skipped))
	}
	if len(report.Failed) > 0 {
		fmt.Fprintf(cmd.out, "Failed: %d\n", len(report.Failed))
		for _, f := range report.Failed {
			fmt.Fprintf(cmd.out, "  - %s: %v\n", f.Document, f.Err)
		}
	}

	return nil
}
