package main

import (
	"fmt"
	"os"

	"github.com/RyanZhou416/QuizForge/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "json-to-db":
		cmd = cli.NewJSONToDBCommand()
	case "extract-images":
		cmd = cli.NewExtractImagesCommand()
	case "inspect":
		cmd = cli.NewInspectCommand()
	case "export":
		cmd = cli.NewExportCommand()
	case "version":
		fmt.Printf("quizforge %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  json-to-db      Convert quiz bank documents into SQLite stores\n")
	fmt.Fprintf(os.Stderr, "  extract-images  Extract embedded images from a PDF\n")
	fmt.Fprintf(os.Stderr, "  inspect         Print the contents of a quiz bank store\n")
	fmt.Fprintf(os.Stderr, "  export          Write a quiz bank store back out as a document\n")
	fmt.Fprintf(os.Stderr, "  version         Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
