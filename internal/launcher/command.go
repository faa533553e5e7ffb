// File: internal/launcher/command.go
package launcher

import (
	"strconv"

	"github.com/enrichkit/enrich-cli/internal/enrichment"
)

// BuildArgs returns the argv for one analysis run. The order is fixed and is
// what the analysis script reads positionally:
//
//	interpreter script input fromType orgDb pvalueCutoff qvalueCutoff pAdjustMethod
func BuildArgs(interpreter, script string, req *enrichment.InvocationRequest) []string {
	return []string{
		interpreter,
		script,
		req.Input,
		string(req.FromType),
		string(req.Organism),
		FormatCutoff(req.PValueCutoff),
		FormatCutoff(req.QValueCutoff),
		string(req.PAdjustMethod),
	}
}

// FormatCutoff renders a cutoff in its shortest round-trippable form, so 0.05
// is passed as "0.05".
func FormatCutoff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
