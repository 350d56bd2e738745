package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/xuri/excelize/v2"

	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

const (
	catalogSheet = "Catalog"
	summarySheet = "Summary"
)

var catalogHeader = []any{"Container", "Group", "Name", "ID", "Value", "State", "Selected", "Locator"}

// CatalogWorkbookAdapter renders a catalog as an xlsx workbook for review.
type CatalogWorkbookAdapter struct{}

func NewCatalogWorkbookAdapter() CatalogWorkbookAdapter {
	return CatalogWorkbookAdapter{}
}

func (a CatalogWorkbookAdapter) WriteCatalog(path string, catalog types.Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), catalogSheet); err != nil {
		return workbookErr(err)
	}
	if err := f.SetSheetRow(catalogSheet, "A1", &catalogHeader); err != nil {
		return workbookErr(err)
	}
	row := 2
	for _, container := range catalog.Containers {
		for _, group := range container.Groups {
			for _, v := range catalog.GroupVariables(group) {
				cell, err := excelize.CoordinatesToCellName(1, row)
				if err != nil {
					return workbookErr(err)
				}
				values := []any{v.Container, v.Group, v.Name, v.ID, v.Value, string(v.Classification()), v.Selected, v.Locator}
				if err := f.SetSheetRow(catalogSheet, cell, &values); err != nil {
					return workbookErr(err)
				}
				row++
			}
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return workbookErr(err)
	}
	header := []any{"Container", "Groups", "Variables"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return workbookErr(err)
	}
	for i, container := range catalog.Containers {
		count := 0
		for _, group := range container.Groups {
			count += len(group.Variables)
		}
		values := []any{container.Name, len(container.Groups), count}
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return workbookErr(err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return workbookErr(err)
	}
	return nil
}

func workbookErr(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write catalog workbook").
		WithCause(err)
}

var _ ports.CatalogReportPort = CatalogWorkbookAdapter{}
