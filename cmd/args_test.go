// File: cmd/args_test.go
package cmd

import (
	"strings"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
)

// FuzzNormalizeArgs checks that normalisation never adds, drops or reorders
// arguments and only ever prefixes a legacy flag with one extra dash.
func FuzzNormalizeArgs(f *testing.F) {
	f.Add([]byte("-fromType\x00S\x00-OrgDb=hsa\x00--\x00-input"))
	f.Fuzz(func(t *testing.T, data []byte) {
		consumer := fuzz.NewConsumer(data)
		var args []string
		if err := consumer.CreateSlice(&args); err != nil {
			return
		}

		got := NormalizeArgs(args)
		if len(got) != len(args) {
			t.Fatalf("length changed: %d -> %d", len(args), len(got))
		}

		terminated := false
		for i, in := range args {
			out := got[i]
			if in == "--" {
				terminated = true
			}
			if out == in {
				continue
			}
			name, _, _ := strings.Cut(in[1:], "=")
			if terminated || out != "-"+in || !legacyFlags[name] {
				t.Fatalf("argument %d rewritten unexpectedly: %q -> %q", i, in, out)
			}
		}
	})
}
