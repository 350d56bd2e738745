package core

import (
	"vspcatalog/internal/policies"
	"vspcatalog/internal/shared"
	"vspcatalog/internal/types"
)

// catalogBuilder owns the arena while one extraction pass runs. Nothing it
// holds is visible to callers until build returns.
type catalogBuilder struct {
	naming  policies.NamingPolicy
	catalog types.Catalog
	seen    map[string]struct{}
}

func newCatalogBuilder(naming policies.NamingPolicy) *catalogBuilder {
	return &catalogBuilder{naming: naming, seen: map[string]struct{}{}}
}

// containerBuilder accumulates the groups of one container.
type containerBuilder struct {
	owner     *catalogBuilder
	container types.Container
}

func (b *catalogBuilder) newContainer(name string) *containerBuilder {
	return &containerBuilder{owner: b, container: types.Container{Name: name}}
}

// commit appends a finished container in extraction order.
func (b *catalogBuilder) commit(c *containerBuilder) {
	b.catalog.Containers = append(b.catalog.Containers, c.container)
}

func (b *catalogBuilder) build() types.Catalog {
	return b.catalog
}

func (c *containerBuilder) name() string {
	return c.container.Name
}

func (c *containerBuilder) addGroup(group types.Group) {
	c.container.Groups = append(c.container.Groups, group)
}

// add is the single entry point for new variables. It enforces uniqueness
// and the character rule, drops hidden parameters and applies the output
// flag. Hidden variables are not an error.
func (c *containerBuilder) add(group *types.Group, name, id, value, locator string, output bool) error {
	v := types.NewVariable(c.container.Name, group.Name, name, id, value)
	v.Locator = locator
	v.SetSourceValue(value)

	fullName := v.FullName()
	if _, exists := c.owner.seen[fullName]; exists && !c.owner.naming.AllowDuplicates {
		return shared.DuplicateName(fullName)
	}
	if err := c.owner.naming.ValidateCharacters(v); err != nil {
		return err
	}
	if c.owner.naming.ShouldHide(v) {
		return nil
	}
	if output {
		if err := v.SetClassification(types.ClassificationOutput); err != nil {
			return err
		}
	}
	c.owner.seen[fullName] = struct{}{}
	c.owner.catalog.Variables = append(c.owner.catalog.Variables, v)
	group.Variables = append(group.Variables, len(c.owner.catalog.Variables)-1)
	return nil
}

// addOutputGroup appends a synthetic group of computed variables sharing id.
func (c *containerBuilder) addOutputGroup(groupName string, fields []string, id string) error {
	group := types.Group{Name: groupName}
	for _, field := range fields {
		if err := c.add(&group, field, id, "0", "", true); err != nil {
			return err
		}
	}
	c.addGroup(group)
	return nil
}

// adopt carries an already validated variable into the new arena as is.
func (c *containerBuilder) adopt(group *types.Group, v types.Variable) {
	c.owner.seen[v.FullName()] = struct{}{}
	c.owner.catalog.Variables = append(c.owner.catalog.Variables, v)
	group.Variables = append(group.Variables, len(c.owner.catalog.Variables)-1)
}
