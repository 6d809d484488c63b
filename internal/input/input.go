// Package input provides the URL list sources a run can load from.
//
// The canonical source is a plain-text file with one URL per line; blank
// lines are ignored. A prompting source wraps a file source for interactive
// use when no path was given on the command line.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInputNotFound is returned when the input file is missing or unreadable.
// This is the only fatal error of a run: nothing can proceed without input.
var ErrInputNotFound = errors.New("input file not found")

// FileSource reads URL lists from plain-text files.
type FileSource struct{}

// NewFileSource creates a FileSource.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// ReadLines reads the file at path and returns its trimmed non-empty lines
// in file order. A missing or unreadable file fails with a wrapped
// ErrInputNotFound.
func (f *FileSource) ReadLines(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	defer file.Close() //nolint:errcheck // Read-only file

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	return lines, nil
}

// PromptSource asks the operator for a file path when none was supplied,
// then delegates to a FileSource. It stands in for a file-picker dialog
// on a plain terminal.
type PromptSource struct {
	file *FileSource
	in   io.Reader
	out  io.Writer
}

// NewPromptSource creates a PromptSource reading the path from in and
// writing the prompt to out.
func NewPromptSource(in io.Reader, out io.Writer) *PromptSource {
	return &PromptSource{
		file: NewFileSource(),
		in:   in,
		out:  out,
	}
}

// ResolvePath returns the given path unchanged when non-empty; otherwise it
// prompts the operator for one. An empty answer fails with ErrInputNotFound.
// Resolution happens before the run starts because the output file names
// derive from the input file name.
func (p *PromptSource) ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	fmt.Fprint(p.out, "Path to sitemap .txt file: ")
	scanner := bufio.NewScanner(p.in)
	if !scanner.Scan() {
		return "", fmt.Errorf("%w: no path entered", ErrInputNotFound)
	}
	path = strings.TrimSpace(scanner.Text())
	if path == "" {
		return "", fmt.Errorf("%w: no path entered", ErrInputNotFound)
	}
	return path, nil
}

// ReadLines resolves the path if needed, then reads the file.
func (p *PromptSource) ReadLines(path string) ([]string, error) {
	resolved, err := p.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	return p.file.ReadLines(resolved)
}
