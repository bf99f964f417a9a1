// Package content holds the guide's static table of contents and the
// chapter content keyed by title. The table ships embedded in the binary;
// an alternative table can be loaded from a YAML file.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/guidegen/core"
)

//go:embed guide.yaml
var embedded []byte

// Default decodes the embedded guide.
func Default() (*core.Guide, error) {
	g, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("embedded guide: %w", err)
	}
	return g, nil
}

// Load decodes a guide from a YAML file. An empty path selects the
// embedded guide.
func Load(path string) (*core.Guide, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading guide %s: %w", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("guide %s: %w", path, err)
	}
	return g, nil
}

// Parse decodes a guide from YAML. Unknown fields are rejected so that
// misspelled keys do not silently drop content.
func Parse(data []byte) (*core.Guide, error) {
	var g core.Guide
	if err := unmarshalStrict(data, &g); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	if g.Content == nil {
		g.Content = map[string]core.ChapterContent{}
	}
	return &g, nil
}

func unmarshalStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// Marshal encodes content entries as YAML, in the same schema Parse reads.
func Marshal(g *core.Guide) ([]byte, error) {
	data, err := yaml.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return data, nil
}
