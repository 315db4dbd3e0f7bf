// Package schemaread acquires JSON Schema documents from files, standard
// input, or URLs, on behalf of the conversion core.
package schemaread

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/dadav/go-jsonpointer"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Default is an opinionated [Reader].
var Default = New()

// Reader reads a JSON Schema from a given location and returns the
// corresponding []byte representation.
type Reader struct {
	client *http.Client
}

// New creates a new [Reader].
func New() *Reader {
	return &Reader{client: http.DefaultClient}
}

// FromPaths reads a JSON Schema from at least one of the given paths and
// returns the corresponding []byte representation. It returns an error only
// if none of the paths provide a readable document, aggregating the per-path
// failures.
func (r *Reader) FromPaths(paths ...string) ([]byte, error) {
	if len(paths) == 0 {
		return nil, errors.New("no paths provided")
	}

	if len(paths) == 1 {
		return r.FromPath(paths[0])
	}

	var merr error

	for _, path := range paths {
		data, err := r.FromPath(path)
		if err == nil {
			return data, nil
		}

		merr = multierror.Append(merr, fmt.Errorf("%s: %w", path, err))
	}

	return nil, fmt.Errorf("could not read JSON Schema from any of the provided paths: %w", merr)
}

// FromPath reads a JSON Schema from a file path, `-` for standard input, or
// an http(s) URL. A `#/json/pointer` suffix selects a subdocument before the
// bytes are returned; the selection is sliced out of the document's node
// tree, so mapping key order survives it. Selected subdocuments come back as
// YAML, which the converter accepts.
func (r *Reader) FromPath(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return data, nil
	}

	base, pointer, hasPointer := strings.Cut(path, "#")

	schemaPath, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}

	var data []byte

	switch schemaPath.Scheme {
	case "http", "https":
		data, err = r.FromURL(schemaPath)
	case "":
		data, err = r.FromFile(schemaPath.Path)
	default:
		return nil, fmt.Errorf("unsupported scheme: %s", schemaPath.Scheme)
	}

	if err != nil {
		return nil, err
	}

	if hasPointer && pointer != "" {
		return selectPointer(data, pointer)
	}

	return data, nil
}

// FromFile reads a JSON Schema from the given file path.
func (r *Reader) FromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// FromURL reads a JSON Schema from the given http(s) URL.
func (r *Reader) FromURL(u *url.URL) ([]byte, error) {
	resp, err := r.client.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %s", u, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", u, err)
	}

	return data, nil
}

// selectPointer slices the subdocument at the given JSON pointer out of
// data. The pointer is evaluated against a generic decode first, which
// supplies the token unescaping and not-found semantics; the returned bytes
// are then re-encoded from the order-preserving node tree, since the generic
// decode alphabetizes mapping keys.
func selectPointer(data []byte, pointer string) ([]byte, error) {
	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to resolve JSON pointer '#%s': %w", pointer, err)
	}

	if _, err := jsonpointer.Get(obj, pointer); err != nil {
		return nil, fmt.Errorf("failed to resolve JSON pointer '#%s': %w", pointer, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to resolve JSON pointer '#%s': %w", pointer, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("failed to resolve JSON pointer '#%s': empty document", pointer)
	}

	node := doc.Content[0]

	for _, token := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		token = strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")

		next, err := childNode(node, token)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve JSON pointer '#%s': %w", pointer, err)
		}

		node = next
	}

	selected, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve JSON pointer '#%s': %w", pointer, err)
	}

	return selected, nil
}

func childNode(n *yaml.Node, token string) (*yaml.Node, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == token {
				return n.Content[i+1], nil
			}
		}
	case yaml.SequenceNode:
		if i, err := strconv.Atoi(token); err == nil && i >= 0 && i < len(n.Content) {
			return n.Content[i], nil
		}
	}

	return nil, fmt.Errorf("no element at %q", token)
}
