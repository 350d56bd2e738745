package core

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"vspcatalog/internal/policies"
	"vspcatalog/internal/shared"
	"vspcatalog/internal/types"
)

// IngestResults copies computed values into every snapshot variable whose
// id names one of buckets. A variable with no value in results fails the
// whole ingestion and the input snapshot is returned unchanged.
func IngestResults(ctx context.Context, snapshot types.Snapshot, buckets []string, results types.ResultSet) (types.Snapshot, error) {
	out := snapshot.Clone()
	updated, err := ingestInto(out.Variables, buckets, results, func(types.Variable) bool { return true })
	if err != nil {
		return snapshot, err
	}
	log.Ctx(ctx).Debug().Strs("buckets", buckets).Int("updated", updated).Msg("results ingested into state")
	return out, nil
}

// IngestCatalogResults does the same for the selected variables of a
// catalog.
func IngestCatalogResults(ctx context.Context, catalog types.Catalog, buckets []string, results types.ResultSet) (types.Catalog, error) {
	out := catalog.Clone()
	updated, err := ingestInto(out.Variables, buckets, results, Checked)
	if err != nil {
		return catalog, err
	}
	log.Ctx(ctx).Debug().Strs("buckets", buckets).Int("updated", updated).Msg("results ingested into catalog")
	return out, nil
}

func ingestInto(vars []types.Variable, buckets []string, results types.ResultSet, include func(types.Variable) bool) (int, error) {
	updated := 0
	for i := range vars {
		v := &vars[i]
		if !include(*v) || !slices.Contains(buckets, v.ID) {
			continue
		}
		value, ok := results.Get(v.FullName())
		if !ok {
			return 0, shared.IngestionMismatch(v.FullName())
		}
		v.Value = value
		v.SetSourceValue(value)
		updated++
	}
	return updated, nil
}

// PopulateAggregates rebuilds the aggregate containers named in results
// from their keys (bucket:qualifier:field). Each run of keys sharing a
// qualifier becomes one group. Other containers are carried over.
func PopulateAggregates(ctx context.Context, catalog types.Catalog, naming policies.NamingPolicy, results map[string]types.ResultSet) (types.Catalog, error) {
	b := newCatalogBuilder(naming)
	for _, container := range catalog.Containers {
		c := b.newContainer(container.Name)
		if rs, ok := results[container.Name]; ok {
			if err := populateContainer(c, rs); err != nil {
				return catalog, err
			}
		} else {
			for _, g := range container.Groups {
				group := types.Group{Name: g.Name}
				for _, idx := range g.Variables {
					c.adopt(&group, catalog.Variables[idx])
				}
				c.addGroup(group)
			}
		}
		b.commit(c)
	}
	out := b.build()
	log.Ctx(ctx).Debug().Int("buckets", len(results)).Int("variables", len(out.Variables)).Msg("aggregates populated")
	return out, nil
}

func populateContainer(c *containerBuilder, results types.ResultSet) error {
	var group *types.Group
	flush := func() {
		if group != nil {
			c.addGroup(*group)
		}
	}
	for _, key := range results.Keys() {
		parts := strings.Split(key, ":")
		if len(parts) != 3 {
			continue
		}
		if group == nil || group.Name != parts[1] {
			flush()
			group = &types.Group{Name: parts[1]}
		}
		value, _ := results.Get(key)
		if err := c.add(group, parts[2], parts[0], value, "", true); err != nil {
			return err
		}
	}
	flush()
	return nil
}
