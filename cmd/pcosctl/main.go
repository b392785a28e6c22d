package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sumaiya226/PCOS/internal/config"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	config.InitLogger()

	root := &cobra.Command{
		Use:          "pcosctl",
		Short:        "Training and maintenance tooling for the PCOS risk service",
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(newTrainCmd())
	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newMigrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
