package entities

// CollectCandidates returns the union of the direct and the managed
// dependencies of a project, deduplicated by declaration identity.
//
// The order is stable for a given model: direct dependencies first, then
// managed ones, each in document order. A declaration seen twice keeps its
// first position.
func CollectCandidates(model ProjectModel) []Dependency {
	direct := model.Dependencies()
	managed := model.ManagedDependencies()

	seen := make(map[ElementNode]struct{}, len(direct)+len(managed))
	candidates := make([]Dependency, 0, len(direct)+len(managed))

	for _, list := range [][]Dependency{direct, managed} {
		for _, dep := range list {
			if dep.Node != nil {
				if _, dup := seen[dep.Node]; dup {
					continue
				}
				seen[dep.Node] = struct{}{}
			}
			candidates = append(candidates, dep)
		}
	}

	return candidates
}
