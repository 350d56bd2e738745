package types

// Group is an ordered run of variables inside a container. Variables holds
// indexes into the owning Catalog's flat variable list.
type Group struct {
	Name      string
	Variables []int
}

type Container struct {
	Name   string
	Groups []Group
}

// Catalog is the result of one extraction pass: an arena of variables in
// extraction order plus the Container/Group hierarchy referencing it.
type Catalog struct {
	Containers []Container
	Variables  []Variable
}

// Clone returns a deep copy that shares no slices with c.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		Containers: make([]Container, len(c.Containers)),
		Variables:  append([]Variable(nil), c.Variables...),
	}
	for i, container := range c.Containers {
		groups := make([]Group, len(container.Groups))
		for j, group := range container.Groups {
			groups[j] = Group{Name: group.Name, Variables: append([]int(nil), group.Variables...)}
		}
		out.Containers[i] = Container{Name: container.Name, Groups: groups}
	}
	return out
}

func (c Catalog) Container(name string) (Container, bool) {
	for _, container := range c.Containers {
		if container.Name == name {
			return container, true
		}
	}
	return Container{}, false
}

// GroupVariables resolves a group's references.
func (c Catalog) GroupVariables(group Group) []Variable {
	out := make([]Variable, 0, len(group.Variables))
	for _, idx := range group.Variables {
		out = append(out, c.Variables[idx])
	}
	return out
}

// Selected returns copies of the selected variables in catalog order.
func (c Catalog) Selected() []Variable {
	var out []Variable
	for _, v := range c.Variables {
		if v.Selected {
			out = append(out, v)
		}
	}
	return out
}

func (c *Catalog) ClearSelection() {
	for i := range c.Variables {
		c.Variables[i].Selected = false
	}
}

// Index groups variable indexes by the given key.
func (c Catalog) Index(key func(Variable) string) map[string][]int {
	index := make(map[string][]int, len(c.Variables))
	for i, v := range c.Variables {
		k := key(v)
		index[k] = append(index[k], i)
	}
	return index
}

// GroupNames returns the group names of a container in order.
func (c Catalog) GroupNames(container string) []string {
	found, ok := c.Container(container)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(found.Groups))
	for _, group := range found.Groups {
		names = append(names, group.Name)
	}
	return names
}
