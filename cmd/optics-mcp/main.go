package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ironsheep/optics-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			printVersion(os.Stdout)
			return
		case "--help", "-h", "help":
			printUsage(os.Stdout)
			return
		}
	}

	// stdout carries the protocol
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("OPTICS_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Optics MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(server.Config{Version: Version, Debug: debug})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", server.ServerName, Version)
	fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
}

// printUsage describes the binary and the tools it serves. Each tool is
// summarised by the first sentence of its MCP description.
func printUsage(w io.Writer) {
	fmt.Fprintf(w, "%s - machine-vision optics calculator served over MCP\n\n", server.ServerName)
	fmt.Fprintln(w, "Sizes a camera and lens for an inspection: field of view, pixel sampling,")
	fmt.Fprintln(w, "motion-blur exposure limits, depth of field, diffraction, image circle")
	fmt.Fprintln(w, "coverage and corner illumination, from a flat map of input keys.")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Usage: %s [--version | --help]\n\n", server.ServerName)
	fmt.Fprintln(w, "Tools:")
	for _, tool := range server.GetToolDefinitions() {
		summary, _, _ := strings.Cut(tool.Description, ". ")
		fmt.Fprintf(w, "  %-26s %s\n", tool.Name, strings.TrimSuffix(summary, "."))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  OPTICS_MCP_LOG_LEVEL=debug   Log every request and failed tool call to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Requests are read from stdin and replies written to stdout, one JSON-RPC")
	fmt.Fprintln(w, "message per line. Run optics_parameters for the list of input keys.")
}
