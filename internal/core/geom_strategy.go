package core

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"vspcatalog/internal/shared"
	"vspcatalog/internal/types"
)

// sectionMode selects how the numbered cross-section groups are built.
type sectionMode int

const (
	sectionsNone sectionMode = iota
	sectionsPlain
	// sectionsWing always emits a group per section and infers driver
	// outputs from the section's choice vector.
	sectionsWing
)

// geomStrategy is the fixed extraction sequence of one geometry kind. Paths
// are relative to the geometry element.
type geomStrategy struct {
	// fixed groups named after the element found at each path
	fixed []string
	// surface is the repeated cross-section element
	surface string
	// curves are the per-section curve groups, in order
	curves   []string
	sections sectionMode
	// parmContainer, when set, is imported group by group
	parmContainer string
}

var (
	bodyCurves = []string{"Cap", "Close", "Trim", "XSecCurve"}
	wingCurves = []string{"Cap", "Close", "LowerCoeff", "Trim", "UpperCoeff", "XSecCurve"}

	fuselageStrategy = geomStrategy{
		surface:  "FuselageGeom/XSecSurf/XSec",
		curves:   bodyCurves,
		sections: sectionsPlain,
	}

	geomStrategies = map[types.GeomKind]geomStrategy{
		types.GeomKindFuselage: fuselageStrategy,
		types.GeomKindStack:    fuselageStrategy,
		types.GeomKindWing: {
			surface:  "WingGeom/XSecSurf/XSec",
			curves:   wingCurves,
			sections: sectionsWing,
		},
		types.GeomKindPropeller: {
			fixed: []string{
				"PropellerGeom/Chord/ParmContainer/Chord",
				"PropellerGeom/Rake/ParmContainer/Rake",
				"PropellerGeom/Skew/ParmContainer/Skew",
				"PropellerGeom/Twist/ParmContainer/Twist",
			},
			surface:  "PropellerGeom/XSecSurf/XSec",
			curves:   bodyCurves,
			sections: sectionsPlain,
		},
		types.GeomKindBodyOfRevolution: {
			parmContainer: "XSecCurve/ParmContainer",
		},
	}
)

// strategyFor returns the extraction sequence for kind. Kinds without an
// entry only get their parameter container and sub-surfaces.
func strategyFor(kind types.GeomKind) geomStrategy {
	return geomStrategies[kind]
}

// apply runs the strategy against the geometry at prefix (ending in "/").
func (s geomStrategy) apply(x *extraction, c *containerBuilder, prefix string) error {
	for _, path := range s.fixed {
		if node, ok := x.doc.Node(prefix + path); ok {
			if err := x.importGroup(c, node, prefix+path); err != nil {
				return err
			}
		}
	}
	if s.sections != sectionsNone {
		surface := prefix + s.surface
		count := len(x.doc.Nodes(surface))
		for _, curve := range s.curves {
			if err := x.importSections(c, surface, count, curve, "XSec/XSecCurve/ParmContainer/"+curve); err != nil {
				return err
			}
		}
		if s.sections == sectionsWing {
			if err := x.importWingSections(c, surface, count); err != nil {
				return err
			}
		} else if err := x.importSections(c, surface, count, "XSec", "ParmContainer/XSec"); err != nil {
			return err
		}
	}
	if s.parmContainer != "" {
		return x.importContainer(c, prefix+s.parmContainer)
	}
	return nil
}

// importSections builds one group per section that carries the element at
// path, named <name>_<section index from 0>.
func (x *extraction) importSections(c *containerBuilder, surface string, count int, name string, path string) error {
	for i := 1; i <= count; i++ {
		locator := fmt.Sprintf("%s[%d]/%s", surface, i, path)
		node, ok := x.doc.Node(locator)
		if !ok {
			continue
		}
		group := types.Group{Name: fmt.Sprintf("%s_%d", name, i-1)}
		if err := x.importVariables(c, &group, node, locator, nil); err != nil {
			return err
		}
		c.addGroup(group)
	}
	return nil
}

// importWingSections builds the XSec_<n> groups of a wing. Each section's
// driver vector names the quantities that are inputs; the remaining driver
// candidates are computed by the tool and become outputs.
func (x *extraction) importWingSections(c *containerBuilder, surface string, count int) error {
	for i := 1; i <= count; i++ {
		section := fmt.Sprintf("%s[%d]/", surface, i)
		group := types.Group{Name: fmt.Sprintf("XSec_%d", i-1)}
		locator := section + "ParmContainer/XSec"
		if node, ok := x.doc.Node(locator); ok {
			drivers, err := parseDriverVector(x.doc.Text(section + "XSec/DriverGroup/ChoiceVec"))
			if err != nil {
				return shared.SchemaViolation("%s: %v", section+"XSec/DriverGroup/ChoiceVec", err)
			}
			if err := x.importVariables(c, &group, node, locator, computedCandidates(drivers)); err != nil {
				return err
			}
		}
		c.addGroup(group)
	}
	return nil
}

// parseDriverVector reads the whitespace or comma separated driver indexes.
func parseDriverVector(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid driver index %q", field)
		}
		out = append(out, value)
	}
	return out, nil
}

func computedCandidates(drivers []int) map[string]bool {
	out := map[string]bool{}
	for j, candidate := range types.DriverCandidates {
		if !slices.Contains(drivers, j) {
			out[candidate] = true
		}
	}
	return out
}
