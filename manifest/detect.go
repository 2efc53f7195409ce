package manifest

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jswork/pkgclip/core"
)

// Format is the encoding of a manifest file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultFileNames are the manifest file names searched for, in order.
// pnpm accepts package.yaml as an alternative to package.json.
var DefaultFileNames = []string{"package.json", "package.yaml", "package.yml"}

// DetectFormat picks the format from the file extension (.yaml/.yml -> YAML, else JSON).
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return FormatYAML
	}
	return FormatJSON
}

// decode parses data in the given format into a generic map.
func decode(data []byte, format Format) (map[string]any, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// Pretty returns the whole manifest re-indented with two spaces.
// Key order and string escapes are kept as written in the file.
func (m *Manifest) Pretty() ([]byte, error) {
	switch m.Format {
	case FormatYAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(m.raw, &doc); err != nil {
			return nil, &core.ParseError{Path: m.Path, Err: err}
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, bytes.TrimSpace(m.raw), "", "  "); err != nil {
			return nil, &core.ParseError{Path: m.Path, Err: err}
		}
		return buf.Bytes(), nil
	}
}
