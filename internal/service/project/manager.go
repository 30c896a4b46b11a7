package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"podesk/internal/model"
)

// FallbackName is used when sanitizing a project name leaves nothing.
const FallbackName = "untitled_project"

// Manager owns the projects directory: one xlsx workbook per project.
// Mutations go straight to disk; there is no in-memory state to keep in sync.
type Manager struct {
	dir string
	log zerolog.Logger
}

// NewManager creates a manager over the given projects directory.
func NewManager(dir string, log zerolog.Logger) *Manager {
	return &Manager{dir: dir, log: log.With().Str("component", "project").Logger()}
}

// Dir returns the projects directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Path resolves a project file name inside the projects directory.
func (m *Manager) Path(fileName string) string {
	return filepath.Join(m.dir, fileName)
}

// Exists reports whether the named project file is present.
func (m *Manager) Exists(fileName string) bool {
	_, err := os.Stat(m.Path(fileName))
	return err == nil
}

// SanitizeName keeps letters, digits, spaces, periods and underscores, trims
// surrounding whitespace, and falls back to FallbackName when nothing is left.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimSpace(b.String())
	if safe == "" {
		return FallbackName
	}
	return safe
}

// Create writes a fresh workbook named after the sanitized project name and
// returns the resulting file name. An existing file of the same name is
// overwritten and reinitialized to a single default sheet.
func (m *Manager) Create(name string) (string, error) {
	safe := SanitizeName(name)
	fileName := safe + model.ProjectExt

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("create projects dir: %w", err)
	}

	wb := excelize.NewFile()
	defer wb.Close()

	// excelize's default sheet already matches the contract name; keep the
	// rename anyway so the invariant does not hinge on library defaults.
	if err := wb.SetSheetName(wb.GetSheetName(0), model.DefaultSheetName); err != nil {
		return "", fmt.Errorf("name default sheet: %w", err)
	}

	if err := wb.SaveAs(m.Path(fileName)); err != nil {
		return "", fmt.Errorf("write project file: %w", err)
	}

	m.log.Info().Str("file", fileName).Msg("project created")
	return fileName, nil
}

// List enumerates project files in the projects directory: non-recursive,
// extension filter only.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), model.ProjectExt) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
