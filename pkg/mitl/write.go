package mitl

import (
	"fmt"
	"os"
	"strings"
)

// FileSuffix is the extension MITL output files carry.
const FileSuffix = ".mitl"

// OutputPath appends the .mitl suffix when name does not already end
// with it. Applying it twice yields the same path.
func OutputPath(name string) string {
	if strings.HasSuffix(name, FileSuffix) {
		return name
	}
	return name + FileSuffix
}

// WriteFile writes the formula as UTF-8 text to the named file,
// appending the .mitl suffix when missing, and returns the path it
// wrote to.
func WriteFile(name, formula string) (string, error) {
	path := OutputPath(name)
	if err := os.WriteFile(path, []byte(formula), 0600); err != nil {
		return "", fmt.Errorf("error writing mitl file (%s): %w", path, err)
	}
	return path, nil
}
