package po

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"podesk/internal/service/project"
)

// Failure taxonomy surfaced to the API layer. Everything else is a plain I/O
// or library error wrapped with context.
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrPONotFound       = errors.New("po not found")
	ErrPOExists         = errors.New("po already exists")
	ErrTemplateNotFound = errors.New("po template not found")
)

// Service implements the purchase-order sheet operations on project workbooks.
type Service struct {
	projects     *project.Manager
	templatePath string
	log          zerolog.Logger
}

// NewService creates the PO service. templatePath points at the fixed template
// workbook whose active sheet is cloned for every new PO.
func NewService(projects *project.Manager, templatePath string, log zerolog.Logger) *Service {
	return &Service{
		projects:     projects,
		templatePath: templatePath,
		log:          log.With().Str("component", "po").Logger(),
	}
}

// openProject opens an existing project workbook for mutation.
func (s *Service) openProject(projectFile string) (*excelize.File, error) {
	if !s.projects.Exists(projectFile) {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectFile)
	}
	wb, err := excelize.OpenFile(s.projects.Path(projectFile))
	if err != nil {
		return nil, fmt.Errorf("open project %s: %w", projectFile, err)
	}
	return wb, nil
}

func sheetExists(wb *excelize.File, name string) bool {
	// Sheet names are a case-insensitive namespace: NewSheet("PO1") against a
	// workbook holding "po1" resolves to the existing sheet instead of adding
	// one, so the existence check has to fold case as well.
	for _, sheet := range wb.GetSheetList() {
		if strings.EqualFold(sheet, name) {
			return true
		}
	}
	return false
}
