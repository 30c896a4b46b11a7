package po

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"podesk/internal/model"
)

// Delete marks a PO as deleted by recoloring its sheet tab. The sheet and all
// of its data stay in the workbook.
func (s *Service) Delete(projectFile, poName string) error {
	wb, err := s.openProject(projectFile)
	if err != nil {
		return err
	}
	defer wb.Close()

	if !sheetExists(wb, poName) {
		return fmt.Errorf("%w: %s", ErrPONotFound, poName)
	}

	color := model.DeletedTabColor
	if err := wb.SetSheetProps(poName, &excelize.SheetPropsOptions{TabColorRGB: &color}); err != nil {
		return fmt.Errorf("set tab color: %w", err)
	}

	if err := wb.Save(); err != nil {
		return fmt.Errorf("save project %s: %w", projectFile, err)
	}

	s.log.Info().Str("project", projectFile).Str("po", poName).Msg("po marked deleted")
	return nil
}

// SaveData writes vendor, delivery, item and terms data into the fixed cells
// of a PO sheet. Item rows are rewritten from the fixed start row; rows left
// over from a previously longer item list are not cleared.
func (s *Service) SaveData(projectFile, poName string, data model.POData) error {
	wb, err := s.openProject(projectFile)
	if err != nil {
		return err
	}
	defer wb.Close()

	if !sheetExists(wb, poName) {
		return fmt.Errorf("%w: %s", ErrPONotFound, poName)
	}

	cells := map[string]string{
		model.CellVendorName:           data.Vendor.Name,
		model.CellVendorAddress:        data.Vendor.Address,
		model.CellVendorContact:        data.Vendor.Contact,
		model.CellVendorEmail:          data.Vendor.Email,
		model.CellDeliveryDate:         data.Delivery.Date,
		model.CellDeliveryInstructions: data.Delivery.Instructions,
		model.CellTerms:                data.Terms,
	}
	for cell, value := range cells {
		if err := wb.SetCellValue(poName, cell, value); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
	}

	row := model.ItemStartRow
	for _, item := range data.Items {
		rowValues := []interface{}{item.Name, item.Quantity, item.UnitPrice, item.Description}
		cell := itemCell(model.ColItemName, row)
		if err := wb.SetSheetRow(poName, cell, &rowValues); err != nil {
			return fmt.Errorf("write item row %d: %w", row, err)
		}
		row++
	}

	if err := wb.Save(); err != nil {
		return fmt.Errorf("save project %s: %w", projectFile, err)
	}

	s.log.Info().Str("project", projectFile).Str("po", poName).Int("items", len(data.Items)).Msg("po data saved")
	return nil
}
