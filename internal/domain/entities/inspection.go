package entities

import (
	logger "github.com/sirupsen/logrus"
)

// Inspection turns a project model into diagnostics.
type Inspection interface {
	Name() string
	Scan(model ProjectModel) []Diagnostic
}

// ExtractVersionInspection flags dependency versions written as literals.
type ExtractVersionInspection struct{}

// NewExtractVersionInspection creates the inspection.
func NewExtractVersionInspection() *ExtractVersionInspection {
	return &ExtractVersionInspection{}
}

// Name returns the inspection identifier.
func (it *ExtractVersionInspection) Name() string {
	return "literal-dependency-version"
}

// Scan reports one diagnostic per eligible candidate whose version node can be
// located. It does not modify the model.
func (it *ExtractVersionInspection) Scan(model ProjectModel) []Diagnostic {
	var diagnostics []Diagnostic

	for _, dep := range CollectCandidates(model) {
		result := Classify(dep)
		if !result.Eligible {
			logger.Debugf("Skipping %s: %s", dep.Coordinates(), result.Reason)
			continue
		}

		if result.Version.Node == nil {
			logger.Debugf("Skipping %s: version has no source node", dep.Coordinates())
			continue
		}
		location, ok := result.Version.Node.Location()
		if !ok {
			logger.Debugf("Skipping %s: version node cannot be located", dep.Coordinates())
			continue
		}

		fix := NewExtractPropertyFix(result.ArtifactID, result.ResolvedVersion, result.Version.Node)
		diagnostics = append(diagnostics, newVersionDiagnostic(dep, location, fix))
	}

	return diagnostics
}
