package entities

import "fmt"

// Severity is the display tier of a diagnostic.
type Severity string

// SeverityWeakWarning is a non-blocking advisory.
const SeverityWeakWarning Severity = "weak_warning"

// Diagnostic is a finding anchored at a dependency's version field.
type Diagnostic struct {
	Anchor     TextNode
	Location   Location
	Severity   Severity
	Message    string
	Dependency Dependency
	Fix        *ExtractPropertyFix
}

// Label returns the label of the attached fix.
func (d Diagnostic) Label() string {
	return d.Fix.Label()
}

func newVersionDiagnostic(dep Dependency, location Location, fix *ExtractPropertyFix) Diagnostic {
	return Diagnostic{
		Anchor:   dep.Version.Node,
		Location: location,
		Severity: SeverityWeakWarning,
		Message: fmt.Sprintf(
			"version %q of %s is a literal; extract it to property %q",
			dep.Version.Raw.Text, dep.Coordinates(), fix.PropertyName,
		),
		Dependency: dep,
		Fix:        fix,
	}
}
