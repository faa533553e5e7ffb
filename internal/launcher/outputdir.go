// File: internal/launcher/outputdir.go
package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/enrichkit/enrich-cli/internal/enrichment"
)

// OutputDirName derives the output directory name from an input path by
// dropping its directory components and extension: "data/sample1.csv" -> "sample1".
// Leading dots do not start an extension, so ".genes" stays ".genes".
func OutputDirName(inputPath string) (string, error) {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	name := strings.TrimSuffix(base, ext)
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", enrichment.InvalidArgumentf("cannot derive an output directory name from input %q", inputPath)
	}
	return name, nil
}

// PrepareOutputDirectory creates the output directory for inputPath under
// baseDir, including any missing parents, and returns its path. An existing
// directory is reused as is; nothing inside it is touched.
func PrepareOutputDirectory(baseDir, inputPath string) (string, error) {
	name, err := OutputDirName(inputPath)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(baseDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}
	return dir, nil
}
