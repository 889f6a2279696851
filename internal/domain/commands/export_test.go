package commands

// Intersect exports intersect for testing.
var Intersect = intersect //nolint:gochecknoglobals // test export
