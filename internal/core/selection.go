package core

import (
	"context"
	"fmt"
	"path"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vspcatalog/internal/types"
)

// ApplySelection checks the catalog variables named by a selection manifest
// and applies its toggles and value overrides to a copy of catalog.
func ApplySelection(ctx context.Context, catalog types.Catalog, selection types.Selection) (types.Catalog, error) {
	out := catalog.Clone()
	for _, entry := range selection.Variables {
		matched := 0
		for i := range out.Variables {
			v := &out.Variables[i]
			ok, err := path.Match(entry.Name, v.FullName())
			if err != nil {
				return catalog, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid selection pattern %q", entry.Name)).
					WithCause(err)
			}
			if !ok || (entry.ID != "" && entry.ID != v.ID) {
				continue
			}
			if err := applyEntry(v, entry); err != nil {
				return catalog, err
			}
			matched++
		}
		if matched == 0 {
			return catalog, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("selection entry %q matches no variable", entry.Name))
		}
		log.Ctx(ctx).Debug().Str("pattern", entry.Name).Int("matched", matched).Msg("selection entry applied")
	}
	return out, nil
}

func applyEntry(v *types.Variable, entry types.SelectionEntry) error {
	v.Selected = true
	switch entry.State {
	case "":
	case types.ClassificationMCOutput, types.ClassificationInput:
		if v.Classification() == types.ClassificationOutput {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("%s is an output and cannot become %s", v.FullName(), entry.State))
		}
		if v.Classification() != entry.State {
			v.Toggle()
		}
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("selection state %q for %s is not selectable", entry.State, v.FullName()))
	}
	if entry.Value != "" {
		if v.Classification() == types.ClassificationOutput {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("%s is an output; its value is computed", v.FullName()))
		}
		v.Value = entry.Value
	}
	return nil
}
