package mapcolor

import (
	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

// Colors available to every region.
var Colors = []string{"red", "green", "blue"}

// Adjacency of the seven Australian regions; ten undirected borders.
var adjacentPairs = [][2]csp.Identifier{
	{"WA", "NT"},
	{"WA", "SA"},
	{"NT", "SA"},
	{"NT", "QLD"},
	{"SA", "QLD"},
	{"SA", "NSW"},
	{"SA", "VIC"},
	{"QLD", "NSW"},
	{"NSW", "VIC"},
	{"VIC", "TAS"},
}

// NewAustralia models the Australia map-coloring problem: one variable per
// region, three colors, and a not-equal constraint per border.
func NewAustralia() (*csp.Model[string], error) {
	model := csp.NewModel[string]()
	for _, region := range []csp.Identifier{"WA", "NT", "SA", "QLD", "NSW", "VIC", "TAS"} {
		if err := model.AddVariable(region, Colors...); err != nil {
			return nil, err
		}
	}
	for _, pair := range adjacentPairs {
		if err := model.AddConstraint(constraint.NotEqual[string](pair[0], pair[1])); err != nil {
			return nil, err
		}
	}
	return model, nil
}
