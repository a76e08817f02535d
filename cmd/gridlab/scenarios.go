package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List available scenarios",
	Long: `Shows every scenario the lab can load: bundled defaults plus any
YAML files in ./scenarios/ or ~/.gridlab/scenarios/.`,
	Run: runScenarios,
}

func runScenarios(_ *cobra.Command, _ []string) {
	infos := scenario.List()

	if len(infos) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, info := range infos {
		if len(info.Name) > maxNameLen {
			maxNameLen = len(info.Name)
		}
	}

	fmt.Printf("  %-*s  %-9s  %-9s  %s\n", maxNameLen, "Name", "Topology", "Size", "Source")
	fmt.Printf("  %-*s  %-9s  %-9s  %s\n", maxNameLen, "----", "--------", "----", "------")

	for _, info := range infos {
		source := "user"
		if info.Bundled {
			source = "bundled"
		}
		size := fmt.Sprintf("%dx%d", info.Width, info.Height)
		fmt.Printf("  %-*s  %-9s  %-9s  %s\n", maxNameLen, info.Name, info.Topology, size, source)
	}

	fmt.Println()
	fmt.Println("Run 'gridlab play <mode> --scenario <name>' to load one.")
}
