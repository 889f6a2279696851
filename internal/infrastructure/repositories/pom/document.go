package pom

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

const (
	tagDependencies         = "dependencies"
	tagDependency           = "dependency"
	tagDependencyManagement = "dependencyManagement"
	tagGroupID              = "groupId"
	tagArtifactID           = "artifactId"
	tagVersion              = "version"
	tagProperties           = "properties"
	tagParent               = "parent"
)

// Document is a pom.xml parsed into a mutable tree. It implements both the
// read-only project model and the mutation primitives used by fixes.
type Document struct {
	path      string
	crlf      bool
	doc       *etree.Document
	elements  map[*etree.Element]*element
	texts     map[*etree.CharData]*textNode
	positions map[*etree.Element]position
}

var (
	_ entities.ProjectDocument = (*Document)(nil)
	_ entities.Document        = (*Document)(nil)
)

// Parse reads a project descriptor from data. The path is only used for
// reporting.
func Parse(path string, data []byte) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	// quotes and apostrophes in text stay unescaped
	doc.WriteSettings.CanonicalText = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}

	positions := indexPositions(data, &doc.Element)
	keepEndTags(&doc.Element, positions)

	return &Document{
		path:      path,
		crlf:      bytes.Contains(data, []byte("\r\n")),
		doc:       doc,
		elements:  make(map[*etree.Element]*element),
		texts:     make(map[*etree.CharData]*textNode),
		positions: positions,
	}, nil
}

// Path returns the file the document was read from.
func (d *Document) Path() string {
	return d.path
}

// Bytes serializes the document. Text, comments, end tag forms and CRLF line
// endings are written as they were read; attributes are written double-quoted
// and separated by single spaces.
func (d *Document) Bytes() ([]byte, error) {
	data, err := d.doc.WriteToBytes()
	if err != nil || !d.crlf {
		return data, err
	}
	// the decoder reads every CRLF as LF
	return bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n")), nil
}

// RootElement returns the <project> element.
func (d *Document) RootElement() (entities.ElementNode, bool) {
	root := d.doc.Root()
	if root == nil {
		return nil, false
	}
	return d.wrapElement(root), true
}

// Dependencies returns the declarations under /project/dependencies.
func (d *Document) Dependencies() []entities.Dependency {
	root := d.doc.Root()
	if root == nil {
		return nil
	}
	return d.declarations(firstChild(root, tagDependencies), false)
}

// ManagedDependencies returns the declarations under
// /project/dependencyManagement/dependencies.
func (d *Document) ManagedDependencies() []entities.Dependency {
	root := d.doc.Root()
	if root == nil {
		return nil
	}
	management := firstChild(root, tagDependencyManagement)
	if management == nil {
		return nil
	}
	return d.declarations(firstChild(management, tagDependencies), true)
}

// Properties returns the entries of /project/properties in document order.
func (d *Document) Properties() []entities.Property {
	root := d.doc.Root()
	if root == nil {
		return nil
	}
	block := firstChild(root, tagProperties)
	if block == nil {
		return nil
	}

	children := block.ChildElements()
	properties := make([]entities.Property, 0, len(children))
	for _, child := range children {
		properties = append(properties, entities.Property{
			Name:  child.Tag,
			Value: strings.TrimSpace(charData(child)),
		})
	}
	return properties
}

func (d *Document) declarations(list *etree.Element, managed bool) []entities.Dependency {
	if list == nil {
		return nil
	}

	res := newResolver(d.doc.Root())
	var deps []entities.Dependency
	for _, child := range list.ChildElements() {
		if child.Tag != tagDependency {
			continue
		}
		deps = append(deps, entities.Dependency{
			Node:       d.wrapElement(child),
			GroupID:    res.resolve(fieldValue(firstChild(child, tagGroupID))),
			ArtifactID: res.resolve(fieldValue(firstChild(child, tagArtifactID))),
			Version:    d.versionField(firstChild(child, tagVersion), res),
			Managed:    managed,
		})
	}
	return deps
}

func (d *Document) versionField(version *etree.Element, res *resolver) entities.VersionField {
	if version == nil {
		return entities.VersionField{}
	}
	// a present but empty <version/> is an empty literal, not a missing one
	raw := entities.NewValue(strings.TrimSpace(charData(version)))
	return entities.VersionField{
		Resolved: res.resolve(raw),
		Raw:      raw,
		Node:     d.anchor(version),
	}
}

// anchor binds a version field to its text node when the element holds a
// single plain text token, and to the element itself otherwise.
func (d *Document) anchor(version *etree.Element) entities.TextNode {
	if len(version.Child) == 1 {
		if cd, ok := version.Child[0].(*etree.CharData); ok && !cd.IsCData() {
			return d.wrapText(cd)
		}
	}
	return d.wrapElement(version)
}

func (d *Document) wrapElement(el *etree.Element) *element {
	if wrapped, ok := d.elements[el]; ok {
		return wrapped
	}
	wrapped := &element{doc: d, el: el}
	d.elements[el] = wrapped
	return wrapped
}

func (d *Document) wrapText(cd *etree.CharData) *textNode {
	if wrapped, ok := d.texts[cd]; ok {
		return wrapped
	}
	wrapped := &textNode{doc: d, cd: cd}
	d.texts[cd] = wrapped
	return wrapped
}

// owns reports whether el is attached to this document.
func (d *Document) owns(el *etree.Element) bool {
	for current := el; current != nil; current = current.Parent() {
		if current == &d.doc.Element {
			return true
		}
	}
	return false
}

func (d *Document) locate(el *etree.Element) (entities.Location, bool) {
	if el == nil || !d.owns(el) {
		return entities.Location{}, false
	}
	pos := d.positions[el]
	return entities.Location{
		Path:   el.GetPath(),
		Line:   pos.line,
		Column: pos.column,
	}, true
}

// firstChild returns the first direct child element named tag, ignoring
// namespace prefixes.
func firstChild(parent *etree.Element, tag string) *etree.Element {
	if parent == nil {
		return nil
	}
	for _, child := range parent.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// fieldValue reads the authored text of a coordinate element. Missing and
// blank elements are null. Versions are read by versionField instead.
func fieldValue(el *etree.Element) entities.Value {
	if el == nil {
		return entities.NullValue()
	}
	text := strings.TrimSpace(charData(el))
	if text == "" {
		return entities.NullValue()
	}
	return entities.NewValue(text)
}

// charData concatenates the text tokens directly under el, skipping comments
// and nested elements.
func charData(el *etree.Element) string {
	var b strings.Builder
	for _, token := range el.Child {
		if cd, ok := token.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}
