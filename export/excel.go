package export

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const columnWidth = 18

// WriteExcel serializes a report into a single styled sheet: one header row
// followed by one row per record, fixed column widths throughout.
func WriteExcel(path string, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"305496"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to build header style")
	}

	lastCol, err := excelize.ColumnNumberToName(len(report.Headers))
	if err != nil {
		return errors.Wrap(err, "failed to resolve last column")
	}
	if err := f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return errors.Wrap(err, "failed to set column widths")
	}

	header := make([]interface{}, len(report.Headers))
	for i, h := range report.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write header row")
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return errors.Wrap(err, "failed to style header row")
	}

	for i, row := range report.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "failed to resolve row cell")
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i+1)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}
