package api

import (
	"fmt"
	"strings"

	"github.com/StronkOnes/BrieflyOS/internal/model"
)

// leadsCSV renders the export format the UI expects: a plain header row of
// field names, then one row per lead with every value double-quoted and
// embedded quotes doubled. Deliberately not RFC 4180 (encoding/csv would
// leave unremarkable values unquoted and change the bytes consumers parse).
func leadsCSV(leads []*model.Lead) string {
	var b strings.Builder
	b.WriteString("id,name,email,stage,createdAt")
	for _, l := range leads {
		fields := []string{
			fmt.Sprintf("%d", l.ID),
			l.Name,
			l.Email,
			l.Stage,
			l.CreatedAt,
		}
		b.WriteString("\n")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`)
		}
	}
	return b.String()
}
