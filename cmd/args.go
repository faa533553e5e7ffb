// File: cmd/args.go
package cmd

import "strings"

// legacyFlags are long flags that the original launcher spelled with a single dash.
var legacyFlags = map[string]bool{
	flagInput:         true,
	flagFromType:      true,
	flagOrgDb:         true,
	flagPValueCutoff:  true,
	flagQValueCutoff:  true,
	flagPAdjustMethod: true,
}

// NormalizeArgs rewrites single-dash long flags such as "-fromType" or
// "-OrgDb=hsa" to their double-dash form. pflag would otherwise read them as
// a cluster of one-letter shorthands. Anything after a bare "--" is passed
// through untouched.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' {
			name, _, _ := strings.Cut(arg[1:], "=")
			if legacyFlags[name] {
				arg = "-" + arg
			}
		}
		out = append(out, arg)
	}
	return out
}
