package testutil

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The engine and focus tests depend on this package, so it must not pull in
// libraries that need a desktop session to initialise.
func TestNoDesktopOnlyImports(t *testing.T) {
	t.Parallel()

	forbidden := []string{
		"golang.design/x/hotkey",
		"fyne.io/systray",
	}

	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}

		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err)

		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)

			for _, bad := range forbidden {
				assert.NotEqual(t, bad, path, "%s imports %s", name, bad)
			}
		}
	}
}
