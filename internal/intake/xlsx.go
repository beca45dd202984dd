package intake

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// sheetRows reads one sheet as string rows. The first row is the header.
func sheetRows(path, sheetName string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "intake: open xlsx")
	}

	var sheet *xlsx.Sheet
	if sheetName != "" {
		s, ok := f.Sheet[sheetName]
		if !ok {
			return nil, eris.Errorf("intake: sheet %q not found", sheetName)
		}
		sheet = s
	} else {
		if len(f.Sheets) == 0 {
			return nil, eris.New("intake: workbook has no sheets")
		}
		sheet = f.Sheets[0]
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
