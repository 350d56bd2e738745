package core

import (
	"fmt"
	"sort"
	"strings"

	"vspcatalog/internal/types"
)

const (
	xddmModeler = "OpenVSP"
	xddmWrapper = "wrap_vsp.csh"
)

// ApplyOrder returns a sorted copy of vars in the order the geometry tool
// must apply them: container ascending, group descending with underscores
// read as spaces, name ascending.
func ApplyOrder(vars []types.Variable) []types.Variable {
	out := append([]types.Variable(nil), vars...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Container != b.Container {
			return a.Container < b.Container
		}
		if a.Group != b.Group {
			return strings.ReplaceAll(a.Group, "_", " ") > strings.ReplaceAll(b.Group, "_", " ")
		}
		return a.Name < b.Name
	})
	return out
}

// FormatDes renders the inputs of snapshot as a design file.
func FormatDes(snapshot types.Snapshot, applyOrder bool) string {
	inputs := snapshot.Inputs()
	if applyOrder {
		inputs = ApplyOrder(inputs)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", len(inputs))
	for _, v := range inputs {
		fmt.Fprintf(&sb, "%s:%s: %s\n", v.ID, v.FullName(), v.Value)
	}
	return sb.String()
}

// FormatXDDM renders the inputs of snapshot as a model description with
// placeholder bounds.
func FormatXDDM(snapshot types.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(&sb, "<Model ID=\"%s\" Modeler=\"%s\" Wrapper=\"%s\">\n", escapeAttr(snapshot.Filename), xddmModeler, xddmWrapper)
	for _, v := range snapshot.Inputs() {
		fmt.Fprintf(&sb, "  <Variable ID=\"%s\" Value=\"%s\" Min=\"0.0\" Max=\"1.0\" VSPID=\"%s\"/>\n",
			escapeAttr(v.FullName()), escapeAttr(v.Value), escapeAttr(v.ID))
	}
	sb.WriteString("</Model>\n")
	return sb.String()
}
