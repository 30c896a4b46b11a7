package po

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Create adds a new PO sheet to a project workbook by cloning the template's
// active sheet. It fails when the project file or template is missing, or when
// a sheet with the requested name already exists. Sheet names are a
// case-insensitive namespace in xlsx, so "PO1" collides with an existing
// "po1". Cell values always copy; styles copy best-effort, so a cell whose
// style cannot be carried over is logged and skipped without failing the
// operation.
func (s *Service) Create(projectFile, poName string) error {
	if !s.projects.Exists(projectFile) {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, projectFile)
	}
	if _, err := os.Stat(s.templatePath); err != nil {
		return ErrTemplateNotFound
	}

	wb, err := excelize.OpenFile(s.projects.Path(projectFile))
	if err != nil {
		return fmt.Errorf("open project %s: %w", projectFile, err)
	}
	defer wb.Close()

	tmpl, err := excelize.OpenFile(s.templatePath)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer tmpl.Close()

	if sheetExists(wb, poName) {
		return fmt.Errorf("%w: %s", ErrPOExists, poName)
	}

	if _, err := wb.NewSheet(poName); err != nil {
		return fmt.Errorf("create sheet %s: %w", poName, err)
	}

	src := tmpl.GetSheetName(tmpl.GetActiveSheetIndex())
	if err := s.copySheet(tmpl, src, wb, poName); err != nil {
		return err
	}

	if err := wb.Save(); err != nil {
		return fmt.Errorf("save project %s: %w", projectFile, err)
	}

	s.log.Info().Str("project", projectFile).Str("po", poName).Msg("po created")
	return nil
}

// copySheet copies every cell in the template sheet's used range into the
// freshly created destination sheet: typed values, formulas and, best-effort,
// styles. The sweep covers the full bounding box, not just valued cells, so
// empty form cells keep their borders and fills.
func (s *Service) copySheet(tmpl *excelize.File, src string, wb *excelize.File, dst string) error {
	cols, rows, err := templateExtent(tmpl, src)
	if err != nil {
		return fmt.Errorf("read template sheet %s: %w", src, err)
	}

	// Style IDs are workbook-local, so each distinct template style is
	// re-registered once in the destination and remembered.
	styleIDs := map[int]int{}

	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return err
			}

			if err := s.copyCellValue(tmpl, src, wb, dst, cell); err != nil {
				return err
			}

			s.copyCellStyle(tmpl, src, wb, dst, cell, styleIDs)
		}
	}

	return nil
}

// templateExtent reports the column and row count of the sheet's used range.
// GetRows only yields cells that carry values, so the valued bounding box is
// widened by the sheet's recorded dimension, which covers styled-but-empty
// cells in files written by spreadsheet applications.
func templateExtent(f *excelize.File, sheet string) (cols, rows int, err error) {
	data, err := f.GetRows(sheet)
	if err != nil {
		return 0, 0, err
	}
	rows = len(data)
	for _, row := range data {
		if len(row) > cols {
			cols = len(row)
		}
	}

	if dim, err := f.GetSheetDimension(sheet); err == nil && dim != "" {
		ref := dim
		if i := strings.IndexByte(dim, ':'); i >= 0 {
			ref = dim[i+1:]
		}
		if c, r, err := excelize.CellNameToCoordinates(ref); err == nil {
			if c > cols {
				cols = c
			}
			if r > rows {
				rows = r
			}
		}
	}

	return cols, rows, nil
}

// copyCellValue copies one cell's content preserving its type: formulas stay
// formulas, numbers stay numbers (so copied number formats still apply),
// strings stay strings. Cells without content are left untouched.
func (s *Service) copyCellValue(tmpl *excelize.File, src string, wb *excelize.File, dst, cell string) error {
	if formula, err := tmpl.GetCellFormula(src, cell); err == nil && formula != "" {
		if err := wb.SetCellFormula(dst, cell, formula); err != nil {
			return fmt.Errorf("copy formula %s: %w", cell, err)
		}
		return nil
	}

	raw, err := tmpl.GetCellValue(src, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("read cell %s: %w", cell, err)
	}
	if raw == "" {
		return nil
	}

	ctype, err := tmpl.GetCellType(src, cell)
	if err != nil {
		return fmt.Errorf("read cell type %s: %w", cell, err)
	}

	switch ctype {
	case excelize.CellTypeBool:
		err = wb.SetCellBool(dst, cell, raw == "1")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeDate, excelize.CellTypeError:
		err = wb.SetCellStr(dst, cell, raw)
	default:
		// Numbers carry no type attribute; write the raw lexical value back
		// without one.
		err = wb.SetCellDefault(dst, cell, raw)
	}
	if err != nil {
		return fmt.Errorf("copy cell %s: %w", cell, err)
	}
	return nil
}

func (s *Service) copyCellStyle(tmpl *excelize.File, src string, wb *excelize.File, dst, cell string, styleIDs map[int]int) {
	warn := func(err error) {
		s.log.Warn().Str("cell", cell).Err(err).Msg("style copy skipped")
	}

	srcID, err := tmpl.GetCellStyle(src, cell)
	if err != nil {
		warn(err)
		return
	}
	if srcID == 0 {
		return
	}

	dstID, ok := styleIDs[srcID]
	if !ok {
		style, err := tmpl.GetStyle(srcID)
		if err != nil {
			warn(err)
			return
		}
		dstID, err = wb.NewStyle(style)
		if err != nil {
			warn(err)
			return
		}
		styleIDs[srcID] = dstID
	}

	if err := wb.SetCellStyle(dst, cell, cell, dstID); err != nil {
		warn(err)
	}
}
