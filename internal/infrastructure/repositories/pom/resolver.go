package pom

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

const maxResolveDepth = 16

// resolver substitutes ${name} references the way the build tool would for a
// single descriptor: project properties plus the project coordinates. Parent
// descriptors are not read.
type resolver struct {
	values map[string]string
}

func newResolver(root *etree.Element) *resolver {
	values := make(map[string]string)
	if root == nil {
		return &resolver{values: values}
	}

	// later duplicates win, as when the properties are loaded into a map
	if block := firstChild(root, tagProperties); block != nil {
		for _, child := range block.ChildElements() {
			values[child.Tag] = strings.TrimSpace(charData(child))
		}
	}

	parent := firstChild(root, tagParent)
	builtins := map[string]*etree.Element{
		"project.groupId":        firstOf(firstChild(root, tagGroupID), firstChild(parent, tagGroupID)),
		"project.artifactId":     firstChild(root, tagArtifactID),
		"project.version":        firstOf(firstChild(root, tagVersion), firstChild(parent, tagVersion)),
		"project.parent.groupId": firstChild(parent, tagGroupID),
		"project.parent.version": firstChild(parent, tagVersion),
	}
	for name, el := range builtins {
		value := fieldValue(el)
		if !value.Valid {
			continue
		}
		values[name] = value.Text
		values["pom."+strings.TrimPrefix(name, "project.")] = value.Text
	}

	return &resolver{values: values}
}

func firstOf(elements ...*etree.Element) *etree.Element {
	for _, el := range elements {
		if el != nil {
			return el
		}
	}
	return nil
}

// resolve returns the interpolated value, or null when a reference cannot be
// resolved.
func (r *resolver) resolve(raw entities.Value) entities.Value {
	if !raw.Valid {
		return raw
	}
	text, ok := r.interpolate(raw.Text, 0)
	if !ok {
		return entities.NullValue()
	}
	return entities.NewValue(text)
}

func (r *resolver) interpolate(text string, depth int) (string, bool) {
	if depth > maxResolveDepth {
		return "", false
	}

	var b strings.Builder
	rest := text
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+2:], "}")
		if end < 0 {
			break // unterminated, kept verbatim
		}

		name := rest[start+2 : start+2+end]
		value, found := r.values[name]
		if !found {
			return "", false
		}
		resolved, ok := r.interpolate(value, depth+1)
		if !ok {
			return "", false
		}

		b.WriteString(rest[:start])
		b.WriteString(resolved)
		rest = rest[start+2+end+1:]
	}
	b.WriteString(rest)

	return b.String(), true
}
