// Command optics-calc reads input.json from its own directory, runs the
// optics calculation and writes results.json beside it.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ironsheep/optics-tools-mcp/internal/optics"
)

const (
	inputName  = "input.json"
	resultName = "results.json"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	exe, err := os.Executable()
	if err != nil {
		log.Fatalf("Failed to locate executable: %v", err)
	}
	dir := filepath.Dir(exe)

	out, err := run(dir)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("Wrote results to %s\n", out)
}

// run calculates dir/input.json into dir/results.json and returns the
// output path.
func run(dir string) (string, error) {
	in := filepath.Join(dir, inputName)
	data, err := os.ReadFile(in)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	var values map[string]interface{}
	if err := json.Unmarshal(data, &values); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", in, err)
	}

	result, err := json.MarshalIndent(optics.CalculateMap(values), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode results: %w", err)
	}

	out := filepath.Join(dir, resultName)
	if err := os.WriteFile(out, append(result, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write results: %w", err)
	}
	return out, nil
}
