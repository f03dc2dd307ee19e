package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/docconv"
	docjson "github.com/fwojciec/docconv/json"
)

// stdinName is the input name that reads standard input.
const stdinName = "-"

// expandInputs resolves glob arguments, including "**", to file paths.
// Plain paths pass through unchecked so that missing files are reported when
// read. No arguments means stdin.
func expandInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{stdinName}, nil
	}
	var inputs []string
	for _, arg := range args {
		if arg == stdinName || !strings.ContainsAny(arg, "*?[{") {
			inputs = append(inputs, arg)
			continue
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return nil, fmt.Errorf("invalid glob pattern: %s", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: %w", arg, docconv.ErrNoMatch)
		}
		inputs = append(inputs, matches...)
	}
	return inputs, nil
}

// inputReader loads a document from a file or stdin according to the
// input's extension.
type inputReader struct {
	stdin    io.Reader
	importer docconv.Importer
	parse    func(string) docconv.Document
}

func (r *inputReader) read(in string) (docconv.Document, docconv.Meta, error) {
	ext := strings.ToLower(filepath.Ext(in))
	if ext == ".json" {
		return docjson.Load(in)
	}

	var (
		data []byte
		err  error
	)
	if in == stdinName {
		data, err = io.ReadAll(r.stdin)
	} else {
		data, err = os.ReadFile(in)
	}
	if err != nil {
		return docconv.Document{}, docconv.Meta{}, fmt.Errorf("read input: %w", err)
	}

	src := string(data)
	if ext == ".html" || ext == ".htm" {
		src, err = r.importer.Import(src)
		if err != nil {
			return docconv.Document{}, docconv.Meta{}, err
		}
	}
	return r.parse(src), docconv.Meta{}, nil
}

// resolveTitle picks the first available of: the explicit title, the
// stored title, the first heading, the input file name.
func resolveTitle(explicit string, meta docconv.Meta, doc docconv.Document, in string) string {
	if explicit != "" {
		return explicit
	}
	if meta.Title != "" {
		return meta.Title
	}
	for _, b := range doc.Blocks {
		if h, ok := b.(docconv.Heading); ok {
			if t := strings.TrimSpace(docconv.PlainText(h.Runs)); t != "" {
				return t
			}
		}
	}
	if in != stdinName {
		base := filepath.Base(in)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return ""
}
