package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/barukai/CppSharp/internal/config"
)

// InitOptions are the answers collected by the init form.
type InitOptions struct {
	ProjectName string
	Generator   string
	SingleFile  bool
}

// InitCommand scaffolds a new bindgen project.
type InitCommand struct {
	// For testing: if set, skip prompting.
	testOptions *InitOptions
}

// NewInitCommand creates the init command.
func NewInitCommand() *InitCommand {
	return &InitCommand{}
}

// Init scaffolds a new project interactively.
func (c *Controller) Init(ctx context.Context) error {
	return NewInitCommand().Run(ctx)
}

// Run prompts for project options and writes the project files.
func (ic *InitCommand) Run(ctx context.Context) error {
	return ic.RunWithOptions(ctx)
}

// RunWithOptions runs init, optionally with bubbletea program options for
// test injection.
func (ic *InitCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	var options *InitOptions
	var err error

	if ic.testOptions != nil {
		options = ic.testOptions
	} else {
		options, err = ic.promptInitOptions(opts...)
		if err != nil {
			return fmt.Errorf("failed to get init options: %w", err)
		}
	}

	if err := ic.scaffold(options); err != nil {
		return err
	}

	fmt.Printf("Created %s project: %s\n", options.Generator, options.ProjectName)
	return nil
}

func (ic *InitCommand) promptInitOptions(opts ...tea.ProgramOption) (*InitOptions, error) {
	var projectName string
	var generator string
	var singleFile bool

	form := ic.createInitForm(&projectName, &generator, &singleFile)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return &InitOptions{
		ProjectName: projectName,
		Generator:   generator,
		SingleFile:  singleFile,
	}, nil
}

func (ic *InitCommand) createInitForm(projectName, generator *string, singleFile *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Name of your new binding project").
				Value(projectName).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("project name cannot be empty")
					}
					if _, err := os.Stat(s); err == nil {
						return fmt.Errorf("directory %s already exists", s)
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Generator").
				Description("Choose the target binding language").
				Options(
					huh.NewOption("C#", "csharp"),
					huh.NewOption("C++/CLI", "cli"),
				).
				Value(generator),

			huh.NewConfirm().
				Title("Aggregate output").
				Description("Emit one file per module instead of one per header (C# only)").
				Value(singleFile),
		),
	)
}

// scaffold writes the project directory: bindgen.json and a starter AST
// manifest.
func (ic *InitCommand) scaffold(options *InitOptions) error {
	if err := os.MkdirAll(options.ProjectName, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	cfg := config.Config{
		Name:      options.ProjectName,
		Version:   "0.1.0",
		Generator: options.Generator,
		Manifest:  "./ast.json",
		Output: config.OutputConfig{
			Dir:        "./generated",
			SingleFile: options.SingleFile,
		},
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(options.ProjectName, "bindgen.json"), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write bindgen.json: %w", err)
	}

	if err := os.WriteFile(filepath.Join(options.ProjectName, "ast.json"), []byte(starterManifest), 0644); err != nil {
		return fmt.Errorf("failed to write ast.json: %w", err)
	}

	return nil
}

// starterManifest gives a new project something to generate immediately.
const starterManifest = `{
  "modules": [
    {"library": "sample", "namespace": "Sample"}
  ],
  "units": [
    {
      "path": "include/greeter.h",
      "module": "sample",
      "declarations": [
        {
          "kind": "class",
          "name": "Greeter",
          "methods": [
            {
              "name": "greet",
              "returnType": {"kind": "builtin", "name": "void"},
              "params": [
                {"name": "name", "type": {"kind": "pointer", "pointee": {"kind": "builtin", "name": "char"}}}
              ]
            }
          ]
        }
      ]
    }
  ]
}
`
