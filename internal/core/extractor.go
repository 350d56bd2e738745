package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"vspcatalog/internal/policies"
	"vspcatalog/internal/ports"
	"vspcatalog/internal/shared"
	"vspcatalog/internal/types"
)

const (
	rootPath         = "/Vsp_Geometry"
	setNamesPath     = rootPath + "/SetNames/Set"
	userParmPath     = rootPath + "/UserParmContainer/UserParm"
	geometryPath     = rootPath + "/Vehicle/Geom"
	topLevelPath     = rootPath + "/*[ParmContainer]"
	subSurfaceSuffix = "Geom/SubSurfaces/SubSurface"
)

// Extraction is the published result of one extraction pass.
type Extraction struct {
	Catalog  types.Catalog
	SetNames []string
}

type GeometryExtractor struct {
	naming policies.NamingPolicy
}

func NewGeometryExtractor(naming policies.NamingPolicy) GeometryExtractor {
	return GeometryExtractor{naming: naming}
}

// geomInstance is what the mass-property container needs to know about an
// already extracted geometry.
type geomInstance struct {
	container string
	kind      types.GeomKind
	symmetry  types.Symmetry
}

// extraction is the state of one pass.
type extraction struct {
	doc     ports.DocumentPort
	builder *catalogBuilder
	geoms   []geomInstance
}

// Extract walks doc and returns a complete catalog. On error nothing is
// returned; callers keep whatever they had before.
func (e GeometryExtractor) Extract(ctx context.Context, doc ports.DocumentPort) (Extraction, error) {
	x := &extraction{doc: doc, builder: newCatalogBuilder(e.naming)}

	setNames := x.setNames()
	steps := []struct {
		name string
		run  func() error
	}{
		{"user parameters", x.extractUserParms},
		{"geometries", x.extractGeometries},
		{"top-level containers", x.extractTopLevel},
		{"file exports", x.extractFileExports},
		{"aggregate buckets", x.extractAggregateBuckets},
		{"mass properties", x.extractMassProps},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Ctx(ctx).Debug().Err(err).Str("step", step.name).Msg("extraction aborted")
			return Extraction{}, err
		}
	}
	catalog := x.builder.build()
	log.Ctx(ctx).Debug().
		Int("containers", len(catalog.Containers)).
		Int("variables", len(catalog.Variables)).
		Int("geometries", len(x.geoms)).
		Msg("catalog extracted")
	return Extraction{Catalog: catalog, SetNames: setNames}, nil
}

func (x *extraction) setNames() []string {
	nodes := x.doc.Nodes(setNamesPath)
	names := make([]string, 0, len(nodes))
	for _, node := range nodes {
		names = append(names, node.Text())
	}
	return names
}

// extractUserParms groups user parameters by their GroupName attribute in
// first-seen order. Entries without a group are not user-facing.
func (x *extraction) extractUserParms() error {
	c := x.builder.newContainer(types.ContainerUserParms)
	index := map[string]int{}
	var groups []types.Group
	for i, node := range x.doc.Nodes(userParmPath) {
		groupName := x.doc.Attr(node, "GroupName", "")
		if groupName == "" {
			continue
		}
		pos, ok := index[groupName]
		if !ok {
			pos = len(groups)
			index[groupName] = pos
			groups = append(groups, types.Group{Name: groupName})
		}
		err := c.add(&groups[pos],
			x.doc.Attr(node, "Name", ""),
			x.doc.Attr(node, "ID", ""),
			x.doc.Attr(node, "Value", ""),
			fmt.Sprintf("%s[%d]", userParmPath, i+1),
			false)
		if err != nil {
			return err
		}
	}
	for _, group := range groups {
		c.addGroup(group)
	}
	x.builder.commit(c)
	return nil
}

func (x *extraction) extractGeometries() error {
	count := len(x.doc.Nodes(geometryPath))
	for i := 1; i <= count; i++ {
		if err := x.extractGeometry(fmt.Sprintf("%s[%d]/", geometryPath, i)); err != nil {
			return err
		}
	}
	return nil
}

func (x *extraction) extractGeometry(prefix string) error {
	code, err := x.integer(prefix + "GeomBase/TypeID")
	if err != nil {
		return err
	}
	kind := types.ParseGeomKind(code)
	c, err := x.parmContainer(prefix + "ParmContainer")
	if err != nil {
		return err
	}
	if err := strategyFor(kind).apply(x, c, prefix); err != nil {
		return err
	}
	if err := x.extractSubSurfaces(c, prefix); err != nil {
		return err
	}
	symmetry, err := x.symmetry(prefix, kind)
	if err != nil {
		return err
	}
	x.geoms = append(x.geoms, geomInstance{container: c.name(), kind: kind, symmetry: symmetry})
	x.builder.commit(c)
	return nil
}

// extractSubSurfaces names each sub-surface group <kind>_<n>, numbering
// each kind separately from 1.
func (x *extraction) extractSubSurfaces(c *containerBuilder, prefix string) error {
	counters := map[types.SubSurfaceKind]int{}
	count := len(x.doc.Nodes(prefix + subSurfaceSuffix))
	for i := 1; i <= count; i++ {
		ssPrefix := fmt.Sprintf("%s%s[%d]", prefix, subSurfaceSuffix, i)
		code, err := x.integer(ssPrefix + "/SubSurfaceInfo/Type")
		if err != nil {
			return err
		}
		kind, err := types.ParseSubSurfaceKind(code)
		if err != nil {
			return shared.SchemaViolation("%s: %v", ssPrefix, err)
		}
		counters[kind]++
		locator := ssPrefix + "/ParmContainer/" + string(kind)
		node, ok := x.doc.Node(locator)
		if !ok {
			return shared.SchemaViolation("%s has no %s parameters", ssPrefix, kind)
		}
		group := types.Group{Name: fmt.Sprintf("%s_%d", kind, counters[kind])}
		if err := x.importVariables(c, &group, node, locator, nil); err != nil {
			return err
		}
		c.addGroup(group)
	}
	return nil
}

// extractTopLevel imports every parameter container owned directly by the
// document root, such as the vehicle and the analysis settings.
func (x *extraction) extractTopLevel() error {
	for _, node := range x.doc.Nodes(topLevelPath) {
		c, err := x.parmContainer(rootPath + "/" + node.Name() + "/ParmContainer")
		if err != nil {
			return err
		}
		if c.name() == types.CFDMeshSettingsName {
			if err := c.addOutputGroup(types.GroupCFDFile, types.CFDExports, types.GroupCFDFile); err != nil {
				return err
			}
		}
		x.builder.commit(c)
	}
	return nil
}

func (x *extraction) extractFileExports() error {
	c := x.builder.newContainer(types.ContainerFile)
	if err := c.addOutputGroup(types.ContainerFile, types.FileExports, types.ContainerFile); err != nil {
		return err
	}
	x.builder.commit(c)
	return nil
}

// extractAggregateBuckets adds the aggregate geometry containers. They stay
// empty until results are populated.
func (x *extraction) extractAggregateBuckets() error {
	x.builder.commit(x.builder.newContainer(types.ContainerCompGeom))
	x.builder.commit(x.builder.newContainer(types.ContainerTagGeom))
	return nil
}

// extractMassProps adds one group per symmetric instance of each geometry,
// named <geometry><n>, plus the Totals group.
func (x *extraction) extractMassProps() error {
	c := x.builder.newContainer(types.ContainerMassProps)
	for _, geom := range x.geoms {
		for j := 0; j < MassPropInstances(geom.kind, geom.symmetry); j++ {
			groupName := geom.container + strconv.Itoa(j)
			if err := c.addOutputGroup(groupName, types.MassPropFields, types.ContainerMassProps); err != nil {
				return err
			}
		}
	}
	if err := c.addOutputGroup(types.GroupTotals, types.MassPropFields, types.ContainerMassProps); err != nil {
		return err
	}
	x.builder.commit(c)
	return nil
}

// parmContainer opens a container named by the ParmContainer's Name element
// and imports its groups.
func (x *extraction) parmContainer(path string) (*containerBuilder, error) {
	name := strings.TrimSpace(x.doc.Text(path + "/Name"))
	if name == "" {
		return nil, shared.SchemaViolation("%s has no name", path)
	}
	c := x.builder.newContainer(name)
	if err := x.importContainer(c, path); err != nil {
		return nil, err
	}
	return c, nil
}

// importContainer turns every child of the element at path, except its
// identity elements, into a group.
func (x *extraction) importContainer(c *containerBuilder, path string) error {
	node, ok := x.doc.Node(path)
	if !ok {
		return shared.SchemaViolation("missing %s", path)
	}
	for _, child := range node.Children() {
		if child.Name() == "ID" || child.Name() == "Name" {
			continue
		}
		if err := x.importGroup(c, child, path+"/"+child.Name()); err != nil {
			return err
		}
	}
	return nil
}

// importGroup builds a group named after node from its children.
func (x *extraction) importGroup(c *containerBuilder, node ports.DocumentNode, locator string) error {
	group := types.Group{Name: node.Name()}
	if err := x.importVariables(c, &group, node, locator, nil); err != nil {
		return err
	}
	c.addGroup(group)
	return nil
}

// importVariables adds each child of node as a variable. Children named in
// outputs are classified Output.
func (x *extraction) importVariables(c *containerBuilder, group *types.Group, node ports.DocumentNode, locator string, outputs map[string]bool) error {
	for _, child := range node.Children() {
		err := c.add(group,
			child.Name(),
			x.doc.Attr(child, "ID", ""),
			x.doc.Attr(child, "Value", ""),
			locator+"/"+child.Name(),
			outputs[child.Name()])
		if err != nil {
			return err
		}
	}
	return nil
}

type symmetryField struct {
	path string
	dst  *int
}

func (x *extraction) symmetry(prefix string, kind types.GeomKind) (types.Symmetry, error) {
	if kind.SymmetryExempt() {
		return types.Symmetry{}, nil
	}
	var sym types.Symmetry
	fields := []symmetryField{
		{prefix + "ParmContainer/Sym/Sym_Axial_Flag", &sym.AxialFlag},
		{prefix + "ParmContainer/Sym/Sym_Planar_Flag", &sym.PlanarBits},
		{prefix + "ParmContainer/Sym/Sym_Rot_N", &sym.RotationN},
	}
	if kind == types.GeomKindPropeller {
		fields = append(fields, symmetryField{prefix + "ParmContainer/Design/NumBlade", &sym.BladeCount})
	}
	for _, field := range fields {
		value, err := x.valueAttr(field.path)
		if err != nil {
			return types.Symmetry{}, err
		}
		*field.dst = value
	}
	return sym, nil
}

// valueAttr reads the Value attribute at path as a truncated integer. A
// missing element reads as zero.
func (x *extraction) valueAttr(path string) (int, error) {
	raw := "0.0"
	if node, ok := x.doc.Node(path); ok {
		raw = x.doc.Attr(node, "Value", raw)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, shared.SchemaViolation("%s: invalid value %q", path, raw)
	}
	return int(value), nil
}

func (x *extraction) integer(path string) (int, error) {
	raw := strings.TrimSpace(x.doc.Text(path))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, shared.SchemaViolation("%s: expected an integer, got %q", path, raw)
	}
	return value, nil
}
