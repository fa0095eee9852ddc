package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrExpectedObject  = errors.New("expected object")
	ErrExpectedArray   = errors.New("expected array")
	ErrInvalidNodeType = errors.New("nodeType must be a string")
	ErrInvalidValue    = errors.New("value must be a string")
	ErrInvalidMarks    = errors.New("marks must be an array of objects with a string type")
	ErrInvalidData     = errors.New("data must be an object")
	ErrTrailingData    = errors.New("unexpected data after document")
)

// Error is a decoding failure located at Path.
type Error struct {
	Op   string // "decode", "node", "mark"
	Path string // e.g. "content[3].marks[1]"
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("document %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("document %s at %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Err: err}
}

// Decode parses a JSON document.
// - null yields a nil document and no error
// - a top-level array becomes the content of an implicit document node
// - unknown fields are ignored; data is kept verbatim
func Decode(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, wrap("decode", "", err)
	}
	if dec.More() {
		return nil, wrap("decode", "", ErrTrailingData)
	}
	return FromValue(v)
}

// DecodeString is a convenience wrapper for Decode.
func DecodeString(s string) (*Node, error) {
	return Decode(strings.NewReader(s))
}

// DecodeBytes is a convenience wrapper for Decode.
func DecodeBytes(b []byte) (*Node, error) {
	return Decode(bytes.NewReader(b))
}

// DecodeYAML parses a YAML document with the same rules as Decode.
func DecodeYAML(r io.Reader) (*Node, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, wrap("decode", "", err)
	}
	return FromValue(v)
}

// FromValue converts a generic decoded value (maps, slices, strings) into a
// document tree.
func FromValue(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []any:
		content, err := parseNodeList(x, "content")
		if err != nil {
			return nil, err
		}
		return &Node{NodeType: Document, Data: map[string]any{}, Content: content}, nil
	default:
		return parseNode(x, "")
	}
}

func parseNode(v any, path string) (*Node, error) {
	obj, ok := asObject(v)
	if !ok {
		return nil, wrap("node", path, ErrExpectedObject)
	}

	n := &Node{}
	for k, val := range obj {
		switch k {
		case "nodeType":
			if val == nil {
				continue
			}
			s, ok := val.(string)
			if !ok {
				return nil, wrap("node", join(path, "nodeType"), ErrInvalidNodeType)
			}
			n.NodeType = s
		case "data":
			if val == nil {
				continue
			}
			data, ok := asObject(val)
			if !ok {
				return nil, wrap("node", join(path, "data"), ErrInvalidData)
			}
			n.Data = data
		case "content":
			if val == nil {
				continue
			}
			arr, ok := val.([]any)
			if !ok {
				return nil, wrap("node", join(path, "content"), ErrExpectedArray)
			}
			content, err := parseNodeList(arr, join(path, "content"))
			if err != nil {
				return nil, err
			}
			n.Content = content
		case "value":
			if val == nil {
				continue
			}
			s, ok := val.(string)
			if !ok {
				return nil, wrap("node", join(path, "value"), ErrInvalidValue)
			}
			n.Value = &s
		case "marks":
			if val == nil {
				continue
			}
			marks, err := parseMarks(val, join(path, "marks"))
			if err != nil {
				return nil, err
			}
			n.Marks = marks
		}
	}
	return n, nil
}

func parseNodeList(arr []any, path string) ([]*Node, error) {
	out := make([]*Node, 0, len(arr))
	for i, item := range arr {
		n, err := parseNode(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseMarks(v any, path string) ([]Mark, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, wrap("mark", path, ErrInvalidMarks)
	}
	out := make([]Mark, 0, len(arr))
	for i, item := range arr {
		obj, ok := asObject(item)
		if !ok {
			return nil, wrap("mark", fmt.Sprintf("%s[%d]", path, i), ErrInvalidMarks)
		}
		t, ok := obj["type"].(string)
		if !ok {
			return nil, wrap("mark", fmt.Sprintf("%s[%d].type", path, i), ErrInvalidMarks)
		}
		out = append(out, Mark{Type: t})
	}
	return out, nil
}

// asObject accepts both JSON objects and YAML mappings with non-string keys.
func asObject(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
