package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/RyanZhou416/QuizForge/internal/bank"
	"github.com/RyanZhou416/QuizForge/internal/exporters"
)

// ExportCommand writes a store back out as an editable document
type ExportCommand struct {
	StorePath  string
	OutputPath string

	out io.Writer
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export <store> <output.json|output.yaml>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write a quiz bank store back out as a document that json-to-db accepts.\n")
		fmt.Fprintf(os.Stderr, "Embedded images stay embedded as data URIs.\n\n")
		fmt.Fprintf(os.Stderr, "Example:\n")
		fmt.Fprintf(os.Stderr, "  %s export lower_extremity_injuries.db lower_extremity.yaml\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected <store> <output>, got %d arguments", fs.NArg())
	}

	cmd.StorePath = fs.Arg(0)
	cmd.OutputPath = fs.Arg(1)
	if _, err := os.Stat(cmd.StorePath); err != nil {
		return fmt.Errorf("store does not exist: %s", cmd.StorePath)
	}
	return nil
}

func (cmd *ExportCommand) Run() error {
	reader, err := bank.Open(cmd.StorePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	result, err := exporters.NewDocumentExporter(cmd.OutputPath).Export(reader)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Exported %d questions (%d options) to %s\n", result.Questions, result.Options, result.Path)
	return nil
}
