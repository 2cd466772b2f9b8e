package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "polylla",
	Short: "polygon kernel toolkit for 2D OFF meshes",
	Long: `This is the command-line application accompanying the polylla library:
	- compute quality statistics over the faces of a mesh,
	- generate the kernel mesh of a face-based mesh (OFF files),
	- reverse the vertex order of every face,
	- easily tweak kernel tolerances (YAML files).`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
