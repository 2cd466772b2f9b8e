package cmd

import (
	"fmt"
	"os"

	polylla "github.com/WinterNacho/Polylla-Unified"
	"github.com/spf13/cobra"
)

// kernelCmd represents the kernel command
var kernelCmd = &cobra.Command{
	Use:   "kernel INFILE",
	Short: "generate the kernel mesh of an OFF mesh",
	Long: `Compute the kernel of every face of an OFF mesh and write the
resulting kernel mesh next to the input, as INFILE_kernel.off. Convex
faces are colored yellow, strict-subset kernels red; faces with an
empty kernel are omitted.`,
	Args: cobra.ExactArgs(1),
	Run:  doKernel,
}

func init() {
	RootCmd.AddCommand(kernelCmd)

	kernelCmd.Flags().StringVar(&cfgVal, "config", "", "kernel settings (YAML)")
}

func doKernel(cmd *cobra.Command, args []string) {
	set, err := loadSettings(cfgVal)
	check(err)
	mesh, err := polylla.LoadOFF(args[0])
	check(err)

	out := polylla.OutputName(args[0], "_kernel")
	f, err := os.Create(out)
	check(err)
	defer f.Close()

	ctx := &polylla.BuildContext{}
	check(polylla.WriteKernelOFF(f, mesh, polylla.NewBuilder(set), ctx))
	if ctx.LogCount() > 0 {
		ctx.DumpLog("log for %s:", args[0])
	}
	fmt.Println("Written kernel mesh to", out)
}
