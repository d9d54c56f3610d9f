package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `{
  "modules": [{"library": "sample", "namespace": "Sample"}],
  "units": [
    {
      "path": "include/greeter.h",
      "module": "sample",
      "declarations": [
        {
          "kind": "class",
          "name": "Greeter",
          "methods": [
            {"name": "greet", "returnType": {"kind": "builtin", "name": "void"}}
          ]
        }
      ]
    }
  ]
}`

func writeProject(t *testing.T, configJSON string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "bindgen.json"), []byte(configJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ast.json"), []byte(testManifest), 0644))
	return root
}

func TestController_Generate(t *testing.T) {
	// Test: Generate produces files under the project's output dir
	root := writeProject(t, `{"name": "sample", "generator": "csharp"}`)

	ctrl := &Controller{
		Flags:  &Flags{ConfigPath: filepath.Join(root, "bindgen.json")},
		Logger: zerolog.Nop(),
	}

	require.NoError(t, ctrl.Generate(context.Background()))

	content, err := os.ReadFile(filepath.Join(root, "generated", "greeter.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "namespace Sample")
	assert.Contains(t, string(content), "class Greeter")
}

func TestController_Generate_SingleFile(t *testing.T) {
	// Test: The aggregated file is named after the module's namespace
	root := writeProject(t, `{"name": "sample", "generator": "csharp", "output": {"singleFile": true}}`)

	ctrl := &Controller{
		Flags:  &Flags{ConfigPath: filepath.Join(root, "bindgen.json")},
		Logger: zerolog.Nop(),
	}

	require.NoError(t, ctrl.Generate(context.Background()))

	_, err := os.Stat(filepath.Join(root, "generated", "Sample.cs"))
	require.NoError(t, err)
}

func TestController_Generate_MissingManifest(t *testing.T) {
	// Test: A missing manifest is a clean failure
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "bindgen.json"), []byte(`{"name": "x"}`), 0644))

	ctrl := &Controller{
		Flags:  &Flags{ConfigPath: filepath.Join(root, "bindgen.json")},
		Logger: zerolog.Nop(),
	}

	err := ctrl.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AST manifest")
}
