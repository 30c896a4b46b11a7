package po

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ListSheets returns all sheet names of a project workbook in PO order.
func (s *Service) ListSheets(projectFile string) ([]string, error) {
	wb, err := s.openProject(projectFile)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	SortSheetNames(sheets)
	return sheets, nil
}

// SortSheetNames orders sheet names by the number formed from all digits in
// the name, ascending. Names without digits sort last; ties keep their
// original order. ["PO10","PO2","Misc"] becomes ["PO2","PO10","Misc"].
func SortSheetNames(names []string) {
	type keyed struct {
		name string
		key  uint64
	}
	ks := make([]keyed, len(names))
	for i, name := range names {
		ks[i] = keyed{name: name, key: sheetSortKey(name)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].key < ks[j].key
	})
	for i := range ks {
		names[i] = ks[i].name
	}
}

func sheetSortKey(name string) uint64 {
	var digits strings.Builder
	for _, r := range name {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return math.MaxUint64
	}
	n, err := strconv.ParseUint(digits.String(), 10, 64)
	if err != nil {
		// Overflow from absurdly long digit runs: still sorts after any
		// parseable key but before digitless names.
		return math.MaxUint64 - 1
	}
	return n
}

// itemCell returns the A1 reference of an item field on a given row.
func itemCell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
