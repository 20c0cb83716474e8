package csvread

import (
	"fmt"
	"strings"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
)

// ValidateHeader checks that the header names every canonical contact column.
// A missing column header is a schema mismatch and fatal to the whole run;
// extra columns are allowed and pass through unchanged.
func ValidateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	var missing []string
	for _, col := range model.Columns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
