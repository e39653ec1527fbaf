package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Renderer writes combinations, one at a time.
type Renderer interface {
	Render(comb []string) error
	// Flush writes out whatever is buffered.
	Flush() error
}

func NewRenderer(w io.Writer, format, separator string) (Renderer, error) {
	bw := bufio.NewWriter(w)
	switch format {
	case "", "tsv":
		return &tsvRenderer{w: bw, separator: separator}, nil
	case "json":
		return &jsonRenderer{w: bw, enc: json.NewEncoder(bw)}, nil
	case "yaml":
		return &yamlRenderer{w: bw}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

type tsvRenderer struct {
	w         *bufio.Writer
	separator string
}

func (r *tsvRenderer) Render(comb []string) error {
	_, err := r.w.WriteString(strings.Join(comb, r.separator) + "\n")
	return err
}

func (r *tsvRenderer) Flush() error {
	return r.w.Flush()
}

// jsonRenderer writes JSON lines, one array per combination.
type jsonRenderer struct {
	w   *bufio.Writer
	enc *json.Encoder
}

func (r *jsonRenderer) Render(comb []string) error {
	return r.enc.Encode(comb)
}

func (r *jsonRenderer) Flush() error {
	return r.w.Flush()
}

// yamlRenderer writes a single YAML sequence with a flow sequence per combination.
type yamlRenderer struct {
	w *bufio.Writer
}

func (r *yamlRenderer) Render(comb []string) error {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range comb {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
	}
	out, err := yaml.Marshal([]*yaml.Node{node})
	if err != nil {
		return err
	}
	_, err = r.w.Write(out)
	return err
}

func (r *yamlRenderer) Flush() error {
	return r.w.Flush()
}
