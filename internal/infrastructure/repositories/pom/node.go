package pom

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

const defaultIndentUnit = "    "

// element adapts an etree element to entities.ElementNode.
type element struct {
	doc *Document
	el  *etree.Element
}

var _ entities.ElementNode = (*element)(nil)

func (it *element) Name() string {
	return it.el.Tag
}

func (it *element) Text() string {
	return charData(it.el)
}

// SetText drops every child token (text, comments, nested elements) and
// leaves exactly one text token.
func (it *element) SetText(text string) {
	for len(it.el.Child) > 0 {
		it.el.RemoveChildAt(0)
	}
	it.el.SetText(text)
}

func (it *element) OwnerDocument() entities.Document {
	if !it.doc.owns(it.el) {
		return nil
	}
	return it.doc
}

func (it *element) Location() (entities.Location, bool) {
	return it.doc.locate(it.el)
}

func (it *element) FirstChild(name string) (entities.ElementNode, bool) {
	child := firstChild(it.el, name)
	if child == nil {
		return nil, false
	}
	return it.doc.wrapElement(child), true
}

func (it *element) CreateChild(name string) entities.ElementNode {
	child := etree.NewElement(name)
	// property names may contain characters etree would read as a prefix
	child.Space = ""
	child.Tag = name
	return it.doc.wrapElement(child)
}

// AppendChild adds child after the last child element. When the parent ends
// with indentation before its closing tag, the child is placed before it and
// indented like its siblings.
func (it *element) AppendChild(child entities.ElementNode) {
	node, ok := child.(*element)
	if !ok {
		return
	}

	parent := it.el
	count := len(parent.Child)
	if count == 0 {
		parent.AddChild(node.el)
		return
	}
	closing, isText := parent.Child[count-1].(*etree.CharData)
	if !isText || !closing.IsWhitespace() || closing.Data == "" {
		parent.AddChild(node.el)
		return
	}

	parent.InsertChildAt(count-1, etree.NewText(childIndent(parent, closing.Data)))
	parent.InsertChildAt(count, node.el)
}

// childIndent returns the whitespace that precedes child elements of parent.
func childIndent(parent *etree.Element, closing string) string {
	for i, token := range parent.Child {
		if _, isElement := token.(*etree.Element); !isElement || i == 0 {
			continue
		}
		if ws, isText := parent.Child[i-1].(*etree.CharData); isText && ws.IsWhitespace() {
			return lastLine(ws.Data)
		}
	}

	unit := defaultIndentUnit
	if strings.HasSuffix(closing, "\t") {
		unit = "\t"
	}
	return lastLine(closing) + unit
}

func lastLine(ws string) string {
	if idx := strings.LastIndex(ws, "\n"); idx >= 0 {
		return ws[idx:]
	}
	return ws
}

// textNode adapts a text token to entities.TextNode.
type textNode struct {
	doc *Document
	cd  *etree.CharData
}

var _ entities.TextNode = (*textNode)(nil)

func (it *textNode) SetText(text string) {
	it.cd.Data = text
}

func (it *textNode) OwnerDocument() entities.Document {
	parent := it.cd.Parent()
	if parent == nil || !it.doc.owns(parent) {
		return nil
	}
	return it.doc
}

func (it *textNode) Location() (entities.Location, bool) {
	parent := it.cd.Parent()
	if parent == nil {
		return entities.Location{}, false
	}
	return it.doc.locate(parent)
}
