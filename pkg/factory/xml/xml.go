// Package xml renders documents to XHTML-flavored XML with etree.
package xml

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/render"
)

// RootTag wraps the rendered blocks in a serialized document.
const RootTag = "richtext"

// KeyAttr holds the render key when keys are emitted.
const KeyAttr = "key"

// Factory builds etree tokens: elements and character data.
type Factory struct {
	EmitKeys bool
}

var _ render.Factory[etree.Token] = Factory{}

// NewFactory returns an XML factory.
func NewFactory(emitKeys bool) Factory {
	return Factory{EmitKeys: emitKeys}
}

// Element implements render.Factory.
func (f Factory) Element(tag string, props render.Props, children ...etree.Token) etree.Token {
	el := etree.NewElement(tag)
	if f.EmitKeys && props.Key != "" {
		el.CreateAttr(KeyAttr, props.Key)
	}
	for _, a := range props.Attrs {
		el.CreateAttr(a.Name, a.Value)
	}
	for _, c := range children {
		el.AddChild(c)
	}
	return el
}

// Text implements render.Factory.
func (Factory) Text(value string) etree.Token {
	return etree.NewText(value)
}

// Document wraps a rendered sequence in a RootTag element.
func Document(tokens []etree.Token) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(RootTag)
	for _, t := range tokens {
		root.AddChild(t)
	}
	return doc
}

// String serializes a rendered sequence. A positive indent pretty-prints,
// which adds whitespace to mixed content.
func String(tokens []etree.Token, indent int) (string, error) {
	doc := Document(tokens)
	if indent > 0 {
		doc.Indent(indent)
	}
	s, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRenderOutput, "failed to write xml")
	}
	return s, nil
}
