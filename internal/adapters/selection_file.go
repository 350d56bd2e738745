package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

// SelectionFileAdapter loads YAML selection manifests.
type SelectionFileAdapter struct{}

func NewSelectionFileAdapter() SelectionFileAdapter {
	return SelectionFileAdapter{}
}

func (a SelectionFileAdapter) LoadSelection(path string) (types.Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Selection{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("selection file not found").
			WithCause(err)
	}
	var selection types.Selection
	if err := yaml.Unmarshal(data, &selection); err != nil {
		return types.Selection{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse selection yaml").
			WithCause(err)
	}
	for _, entry := range selection.Variables {
		if entry.Name == "" {
			return types.Selection{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("selection entry without name")
		}
	}
	return selection, nil
}

var _ ports.SelectionSourcePort = SelectionFileAdapter{}
