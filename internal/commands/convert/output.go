package convert

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/centra-dev/centra/internal/converter"
	"github.com/centra-dev/centra/internal/manifest"
	"github.com/centra-dev/centra/internal/printer"
	"github.com/centra-dev/centra/internal/tui"
)

// confirmFn and isInteractiveFn are variables so tests can simulate prompt
// answers without a terminal.
var (
	confirmFn       = runConfirmPrompt
	isInteractiveFn = tui.IsInteractive
)

func runConfirmPrompt(title, description string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Convert").
			Negative("Cancel").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// printResult renders the per-run summary.
func printResult(result *converter.Result, sort manifest.SortMode) {
	if result.Preview {
		printer.PrintWarning("Dry run: no files were written.")
	}

	fmt.Printf("%s %d package(s) across %d project(s)\n",
		printer.Bold("Centralized"), result.PackageCount(), result.ProjectCount)
	if result.Seeded {
		printer.PrintFaint("Versions adopted from the existing package manifest (already converted).")
	}

	for _, name := range result.Packages.Ordered(sort) {
		version, _ := result.Packages.Get(name)
		fmt.Printf("  %s %s %s\n", printer.SuccessBadge("✓"), name, printer.Faint(version))
	}

	fmt.Println()
	fmt.Println(printer.Bold("Artifacts"))
	fmt.Printf("  %s\n", result.BuildPropsPath)
	fmt.Printf("  %s\n", result.PackagesPath)

	if result.RewrittenCount > 0 {
		verb := "rewritten"
		if result.Preview {
			verb = "would be rewritten"
		}
		fmt.Printf("  %d project file(s) %s\n", result.RewrittenCount, verb)
	}
}
