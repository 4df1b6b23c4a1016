package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadSheet opens a workbook and returns the named worksheet's rows as text
// cells. Trailing empty cells of a row may be absent, per excelize.
func ReadSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}
