package shell

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// writeTable prints rows under a header in aligned columns:
//
//	id | name
//	---+-----
//	1  | ada
func writeTable(w io.Writer, header []string, rows [][]string) {
	if len(header) == 0 {
		return
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	fmt.Fprintln(w, joinPadded(header, widths))

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	fmt.Fprintln(w, strings.Join(sep, "-+-"))

	for _, row := range rows {
		fmt.Fprintln(w, joinPadded(row, widths))
	}
}

func joinPadded(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := widths[i] - utf8.RuneCountInString(cell)
		parts[i] = cell + strings.Repeat(" ", pad)
	}
	return strings.TrimRight(strings.Join(parts, " | "), " ")
}

func rowsTag(n int) string {
	if n == 1 {
		return "(1 row)"
	}
	return fmt.Sprintf("(%d rows)", n)
}
