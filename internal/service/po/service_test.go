package po

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"podesk/internal/model"
	"podesk/internal/service/project"
)

// newTestService builds a projects dir with one empty project and a template
// workbook whose active sheet carries a styled header.
func newTestService(t *testing.T) (*Service, *project.Manager, string) {
	t.Helper()
	dir := t.TempDir()

	projects := project.NewManager(filepath.Join(dir, "projects"), zerolog.Nop())
	file, err := projects.Create("demo")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	templatePath := filepath.Join(dir, "template.xlsx")
	tmpl := excelize.NewFile()
	if err := tmpl.SetCellValue("Sheet1", "A1", "PURCHASE ORDER"); err != nil {
		t.Fatalf("write template header: %v", err)
	}
	if err := tmpl.SetCellValue("Sheet1", "A9", "Item"); err != nil {
		t.Fatalf("write template label: %v", err)
	}
	styleID, err := tmpl.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatalf("register template style: %v", err)
	}
	if err := tmpl.SetCellStyle("Sheet1", "A1", "A1", styleID); err != nil {
		t.Fatalf("style template header: %v", err)
	}
	if err := tmpl.SaveAs(templatePath); err != nil {
		t.Fatalf("save template: %v", err)
	}
	tmpl.Close()

	return NewService(projects, templatePath, zerolog.Nop()), projects, file
}

func TestSortSheetNames(t *testing.T) {
	names := []string{"PO10", "PO2", "Misc", "PO1 rev3"}
	SortSheetNames(names)

	want := []string{"PO2", "PO10", "PO1 rev3", "Misc"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("sorted = %v, want %v", names, want)
	}
}

func TestSortSheetNamesStableTies(t *testing.T) {
	names := []string{"Zeta", "Alpha", "PO1"}
	SortSheetNames(names)

	want := []string{"PO1", "Zeta", "Alpha"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("sorted = %v, want %v", names, want)
	}
}

func TestCreateClonesTemplateValuesAndStyle(t *testing.T) {
	svc, projects, file := newTestService(t)

	if err := svc.Create(file, "PO1"); err != nil {
		t.Fatalf("create po: %v", err)
	}

	wb, err := excelize.OpenFile(projects.Path(file))
	if err != nil {
		t.Fatalf("open project: %v", err)
	}
	defer wb.Close()

	got, err := wb.GetCellValue("PO1", "A1")
	if err != nil || got != "PURCHASE ORDER" {
		t.Fatalf("A1 = %q (err %v), want template header", got, err)
	}

	styleID, err := wb.GetCellStyle("PO1", "A1")
	if err != nil {
		t.Fatalf("read copied style id: %v", err)
	}
	style, err := wb.GetStyle(styleID)
	if err != nil {
		t.Fatalf("read copied style: %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Fatalf("header style not carried over: %+v", style)
	}
}

func TestCreateCopiesStylesOfEmptyCells(t *testing.T) {
	svc, projects, file := newTestService(t)

	// Rebuild the template with form cells that carry a border but no value:
	// B2 inside the valued bounding box, B14 outside it, reachable only
	// through the recorded dimension (spreadsheet applications write it;
	// files built here set it by hand).
	tmpl := excelize.NewFile()
	if err := tmpl.SetCellValue("Sheet1", "A1", "PURCHASE ORDER"); err != nil {
		t.Fatalf("write template header: %v", err)
	}
	if err := tmpl.SetCellValue("Sheet1", "D12", "Total"); err != nil {
		t.Fatalf("write template footer: %v", err)
	}
	borderID, err := tmpl.NewStyle(&excelize.Style{
		Border: []excelize.Border{{Type: "bottom", Style: 1, Color: "000000"}},
	})
	if err != nil {
		t.Fatalf("register border style: %v", err)
	}
	for _, cell := range []string{"B2", "B14"} {
		if err := tmpl.SetCellStyle("Sheet1", cell, cell, borderID); err != nil {
			t.Fatalf("style %s: %v", cell, err)
		}
	}
	if err := tmpl.SetSheetDimension("Sheet1", "A1:D14"); err != nil {
		t.Fatalf("set dimension: %v", err)
	}
	if err := tmpl.SaveAs(svc.templatePath); err != nil {
		t.Fatalf("save template: %v", err)
	}
	tmpl.Close()

	if err := svc.Create(file, "PO1"); err != nil {
		t.Fatalf("create po: %v", err)
	}

	wb, err := excelize.OpenFile(projects.Path(file))
	if err != nil {
		t.Fatalf("open project: %v", err)
	}
	defer wb.Close()

	for _, cell := range []string{"B2", "B14"} {
		styleID, err := wb.GetCellStyle("PO1", cell)
		if err != nil {
			t.Fatalf("read %s style id: %v", cell, err)
		}
		if styleID == 0 {
			t.Fatalf("%s lost its style in the clone", cell)
		}
		style, err := wb.GetStyle(styleID)
		if err != nil {
			t.Fatalf("read %s style: %v", cell, err)
		}
		if len(style.Border) == 0 {
			t.Fatalf("%s border not carried over: %+v", cell, style)
		}
		if got, err := wb.GetCellValue("PO1", cell); err != nil || got != "" {
			t.Fatalf("%s should stay empty, got %q (err %v)", cell, got, err)
		}
	}
}

func TestCreateCopiesTypedValuesAndFormulas(t *testing.T) {
	svc, projects, file := newTestService(t)

	tmpl, err := excelize.OpenFile(svc.templatePath)
	if err != nil {
		t.Fatalf("open template: %v", err)
	}
	if err := tmpl.SetCellValue("Sheet1", "C9", 2.5); err != nil {
		t.Fatalf("write numeric cell: %v", err)
	}
	if err := tmpl.SetCellFormula("Sheet1", "D9", "=B9*C9"); err != nil {
		t.Fatalf("write formula cell: %v", err)
	}
	if err := tmpl.Save(); err != nil {
		t.Fatalf("save template: %v", err)
	}
	wantFormula, err := tmpl.GetCellFormula("Sheet1", "D9")
	if err != nil {
		t.Fatalf("read template formula: %v", err)
	}
	tmpl.Close()

	if err := svc.Create(file, "PO1"); err != nil {
		t.Fatalf("create po: %v", err)
	}

	wb, err := excelize.OpenFile(projects.Path(file))
	if err != nil {
		t.Fatalf("open project: %v", err)
	}
	defer wb.Close()

	// The numeric cell must not arrive as text.
	ctype, err := wb.GetCellType("PO1", "C9")
	if err != nil {
		t.Fatalf("read C9 type: %v", err)
	}
	if ctype == excelize.CellTypeSharedString || ctype == excelize.CellTypeInlineString {
		t.Fatalf("C9 copied as string, type %v", ctype)
	}
	if got, err := wb.GetCellValue("PO1", "C9"); err != nil || got != "2.5" {
		t.Fatalf("C9 = %q (err %v), want 2.5", got, err)
	}

	gotFormula, err := wb.GetCellFormula("PO1", "D9")
	if err != nil {
		t.Fatalf("read D9 formula: %v", err)
	}
	if gotFormula != wantFormula {
		t.Fatalf("D9 formula = %q, want %q", gotFormula, wantFormula)
	}

	// The header keeps its string type.
	ctype, err = wb.GetCellType("PO1", "A1")
	if err != nil {
		t.Fatalf("read A1 type: %v", err)
	}
	if ctype != excelize.CellTypeSharedString && ctype != excelize.CellTypeInlineString {
		t.Fatalf("A1 copied as non-string, type %v", ctype)
	}
}

func TestCreateDeclinesCaseFoldedDuplicate(t *testing.T) {
	svc, projects, file := newTestService(t)

	wb, err := excelize.OpenFile(projects.Path(file))
	if err != nil {
		t.Fatalf("open project: %v", err)
	}
	if _, err := wb.NewSheet("po1"); err != nil {
		t.Fatalf("seed sheet: %v", err)
	}
	if err := wb.SetCellValue("po1", "A1", "keep"); err != nil {
		t.Fatalf("seed data: %v", err)
	}
	if err := wb.Save(); err != nil {
		t.Fatalf("save seed: %v", err)
	}
	wb.Close()

	// Workbooks cannot hold both "po1" and "PO1"; a create that only differs
	// in case would clobber the existing sheet, so it must decline.
	if err := svc.Create(file, "PO1"); !errors.Is(err, ErrPOExists) {
		t.Fatalf("case-folded create = %v, want ErrPOExists", err)
	}

	wb, err = excelize.OpenFile(projects.Path(file))
	if err != nil {
		t.Fatalf("reopen project: %v", err)
	}
	defer wb.Close()
	if sheets := wb.GetSheetList(); len(sheets) != 2 {
		t.Fatalf("sheet set changed: %v", sheets)
	}
	if got, err := wb.GetCellValue("po1", "A1"); err != nil || got != "keep" {
		t.Fatalf("po1!A1 = %q (err %v), want untouched data", got, err)
	}
}

func TestCreateDuplicateFailsAndLeavesWorkbookUntouched(t *testing.T) {
	svc, projects, file := newTestService(t)

	if err := svc.Create(file, "PO1"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := svc.Create(file, "PO1")
	if !errors.Is(err, ErrPOExists) {
		t.Fatalf("duplicate create = %v, want ErrPOExists", err)
	}

	wb, err := excelize.OpenFile(projects.Path(file))
	if err != nil {
		t.Fatalf("open project: %v", err)
	}
	defer wb.Close()
	if sheets := wb.GetSheetList(); len(sheets) != 2 {
		t.Fatalf("sheet set changed by failed create: %v", sheets)
	}
}

func TestCreateMissingTemplate(t *testing.T) {
	svc, _, file := newTestService(t)
	svc.templatePath = filepath.Join(t.TempDir(), "absent.xlsx")

	if err := svc.Create(file, "PO1"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("create = %v, want ErrTemplateNotFound", err)
	}
}

func TestCreateMissingProject(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.Create("ghost.xlsx", "PO1"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("create = %v, want ErrProjectNotFound", err)
	}
}

func TestDeleteRecolorsTabAndKeepsSheet(t *testing.T) {
	svc, projects, file := newTestService(t)

	if err := svc.Create(file, "PO1"); err != nil {
		t.Fatalf("create po: %v", err)
	}
	if err := svc.Delete(file, "PO1"); err != nil {
		t.Fatalf("delete po: %v", err)
	}

	wb, err := excelize.OpenFile(projects.Path(file))
	if err != nil {
		t.Fatalf("open project: %v", err)
	}
	defer wb.Close()

	if !sheetExists(wb, "PO1") {
		t.Fatalf("sheet removed, expected it kept with recolored tab")
	}
	props, err := wb.GetSheetProps("PO1")
	if err != nil {
		t.Fatalf("read sheet props: %v", err)
	}
	if props.TabColorRGB == nil || *props.TabColorRGB != model.DeletedTabColor {
		t.Fatalf("tab color = %v, want %s", props.TabColorRGB, model.DeletedTabColor)
	}

	// The sheet's data stays readable after the delete.
	if got, err := wb.GetCellValue("PO1", "A1"); err != nil || got != "PURCHASE ORDER" {
		t.Fatalf("A1 after delete = %q (err %v)", got, err)
	}
}

func TestDeleteMissingPO(t *testing.T) {
	svc, _, file := newTestService(t)

	if err := svc.Delete(file, "PO9"); !errors.Is(err, ErrPONotFound) {
		t.Fatalf("delete = %v, want ErrPONotFound", err)
	}
}

func TestSaveDataWritesFixedCells(t *testing.T) {
	svc, projects, file := newTestService(t)

	if err := svc.Create(file, "PO1"); err != nil {
		t.Fatalf("create po: %v", err)
	}

	data := model.POData{
		Vendor: model.Vendor{
			Name:    "Acme",
			Address: "1 Main St",
			Contact: "555-0100",
			Email:   "orders@acme.test",
		},
		Delivery: model.Delivery{Date: "2026-09-01", Instructions: "Dock B"},
		Items: []model.Item{
			{Name: "Widget", Quantity: 5, UnitPrice: 2.5, Description: "blue"},
		},
		Terms: "Net 30",
	}
	if err := svc.SaveData(file, "PO1", data); err != nil {
		t.Fatalf("save data: %v", err)
	}

	wb, err := excelize.OpenFile(projects.Path(file))
	if err != nil {
		t.Fatalf("open project: %v", err)
	}
	defer wb.Close()

	checks := map[string]string{
		model.CellVendorName:           "Acme",
		model.CellVendorAddress:        "1 Main St",
		model.CellVendorContact:        "555-0100",
		model.CellVendorEmail:          "orders@acme.test",
		model.CellDeliveryDate:         "2026-09-01",
		model.CellDeliveryInstructions: "Dock B",
		model.CellTerms:                "Net 30",
		"A10":                          "Widget",
		"B10":                          "5",
		"C10":                          "2.5",
		"D10":                          "blue",
	}
	for cell, want := range checks {
		got, err := wb.GetCellValue("PO1", cell)
		if err != nil {
			t.Fatalf("read %s: %v", cell, err)
		}
		if got != want {
			t.Fatalf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestSaveDataKeepsTrailingItemRows(t *testing.T) {
	svc, projects, file := newTestService(t)

	if err := svc.Create(file, "PO1"); err != nil {
		t.Fatalf("create po: %v", err)
	}

	long := model.POData{Items: []model.Item{
		{Name: "One", Quantity: 1, UnitPrice: 1},
		{Name: "Two", Quantity: 2, UnitPrice: 2},
		{Name: "Three", Quantity: 3, UnitPrice: 3},
	}}
	if err := svc.SaveData(file, "PO1", long); err != nil {
		t.Fatalf("save long list: %v", err)
	}

	short := model.POData{Items: []model.Item{
		{Name: "Solo", Quantity: 9, UnitPrice: 9},
	}}
	if err := svc.SaveData(file, "PO1", short); err != nil {
		t.Fatalf("save short list: %v", err)
	}

	wb, err := excelize.OpenFile(projects.Path(file))
	if err != nil {
		t.Fatalf("open project: %v", err)
	}
	defer wb.Close()

	// Row 10 is overwritten; rows 11 and 12 keep the earlier items.
	for cell, want := range map[string]string{"A10": "Solo", "A11": "Two", "A12": "Three"} {
		got, err := wb.GetCellValue("PO1", cell)
		if err != nil {
			t.Fatalf("read %s: %v", cell, err)
		}
		if got != want {
			t.Fatalf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestSaveDataMissingPO(t *testing.T) {
	svc, _, file := newTestService(t)

	err := svc.SaveData(file, "PO9", model.POData{})
	if !errors.Is(err, ErrPONotFound) {
		t.Fatalf("save = %v, want ErrPONotFound", err)
	}
}

func TestListSheetsReturnsPOOrder(t *testing.T) {
	svc, _, file := newTestService(t)

	for _, name := range []string{"PO10", "PO2"} {
		if err := svc.Create(file, name); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	sheets, err := svc.ListSheets(file)
	if err != nil {
		t.Fatalf("list sheets: %v", err)
	}
	// "Sheet1" carries the digit 1, so the numeric ordering puts it first.
	want := []string{"Sheet1", "PO2", "PO10"}
	if !reflect.DeepEqual(sheets, want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
}
