//go:build integration || unit || test

package entitydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

// FakeDocument is an in-memory entities.Document.
type FakeDocument struct {
	Root *FakeElement
}

var _ entities.Document = (*FakeDocument)(nil)

func (d *FakeDocument) RootElement() (entities.ElementNode, bool) {
	if d.Root == nil {
		return nil, false
	}
	return d.Root, true
}

// FakeElement is an in-memory entities.ElementNode.
type FakeElement struct {
	Tag         string
	Content     string
	Children    []*FakeElement
	Doc         *FakeDocument
	Path        string
	Unlocatable bool

	// spy: number of SetText calls
	SetTextCalls int
}

var _ entities.ElementNode = (*FakeElement)(nil)

// NewFakeProject creates a document whose root is <project>, optionally with
// an empty <properties> block.
func NewFakeProject(withProperties bool) (*FakeDocument, *FakeElement) {
	doc := &FakeDocument{}
	doc.Root = &FakeElement{Tag: "project", Doc: doc, Path: "/project"}
	if withProperties {
		doc.Root.Children = append(doc.Root.Children, &FakeElement{
			Tag: "properties", Doc: doc, Path: "/project/properties",
		})
	}
	return doc, doc.Root
}

func (e *FakeElement) Name() string { return e.Tag }

func (e *FakeElement) Text() string { return e.Content }

func (e *FakeElement) SetText(text string) {
	e.SetTextCalls++
	e.Content = text
	e.Children = nil
}

func (e *FakeElement) OwnerDocument() entities.Document {
	if e.Doc == nil {
		return nil
	}
	return e.Doc
}

func (e *FakeElement) Location() (entities.Location, bool) {
	if e.Unlocatable {
		return entities.Location{}, false
	}
	return entities.Location{Path: e.Path}, true
}

func (e *FakeElement) FirstChild(name string) (entities.ElementNode, bool) {
	for _, child := range e.Children {
		if child.Tag == name {
			return child, true
		}
	}
	return nil, false
}

func (e *FakeElement) CreateChild(name string) entities.ElementNode {
	return &FakeElement{Tag: name, Doc: e.Doc, Path: e.Path + "/" + name}
}

func (e *FakeElement) AppendChild(child entities.ElementNode) {
	if c, ok := child.(*FakeElement); ok {
		e.Children = append(e.Children, c)
	}
}

// ChildrenNamed returns the direct children with the given tag.
func (e *FakeElement) ChildrenNamed(name string) []*FakeElement {
	var result []*FakeElement
	for _, child := range e.Children {
		if child.Tag == name {
			result = append(result, child)
		}
	}
	return result
}

// FakeText is an in-memory text node.
type FakeText struct {
	Data string
	Doc  *FakeDocument
}

var _ entities.TextNode = (*FakeText)(nil)

func (t *FakeText) SetText(text string) { t.Data = text }

func (t *FakeText) OwnerDocument() entities.Document {
	if t.Doc == nil {
		return nil
	}
	return t.Doc
}

func (t *FakeText) Location() (entities.Location, bool) {
	return entities.Location{Path: "#text"}, true
}

// FakeProjectModel is an in-memory entities.ProjectModel.
type FakeProjectModel struct {
	Direct  []entities.Dependency
	Managed []entities.Dependency
	Props   []entities.Property
}

var _ entities.ProjectModel = (*FakeProjectModel)(nil)

func (m *FakeProjectModel) Dependencies() []entities.Dependency { return m.Direct }

func (m *FakeProjectModel) ManagedDependencies() []entities.Dependency { return m.Managed }

func (m *FakeProjectModel) Properties() []entities.Property { return m.Props }
