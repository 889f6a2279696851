package pom

import (
	"bytes"
	"encoding/xml"

	"github.com/beevik/etree"
)

type position struct {
	line        int
	column      int
	selfClosing bool // written as <tag/> in the source
}

// indexPositions maps every parsed element to the line and column of its start
// tag and records whether the tag was self-closing. Elements are matched to start tags in document order, which is the order
// both etree and encoding/xml produce them in. A decode error stops indexing;
// elements past that point report no position.
func indexPositions(data []byte, doc *etree.Element) map[*etree.Element]position {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var starts []position
	for {
		line, column := decoder.InputPos()
		token, err := decoder.RawToken()
		if err != nil {
			break
		}
		if _, ok := token.(xml.StartElement); ok {
			end := int(decoder.InputOffset())
			selfClosing := end >= 2 && data[end-2] == '/'
			starts = append(starts, position{line: line, column: column, selfClosing: selfClosing})
		}
	}

	positions := make(map[*etree.Element]position, len(starts))
	next := 0
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if next < len(starts) {
				positions[child] = starts[next]
			}
			next++
			walk(child)
		}
	}
	walk(doc)

	return positions
}

// keepEndTags gives every empty element that was written as <tag></tag> an
// empty text token, so it is serialized the same way instead of as <tag/>.
func keepEndTags(el *etree.Element, positions map[*etree.Element]position) {
	for _, child := range el.ChildElements() {
		if len(child.Child) == 0 {
			if pos, ok := positions[child]; ok && !pos.selfClosing {
				child.AddChild(etree.NewText(""))
			}
			continue
		}
		keepEndTags(child, positions)
	}
}
