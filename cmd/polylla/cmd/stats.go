package cmd

import (
	"fmt"
	"path/filepath"

	polylla "github.com/WinterNacho/Polylla-Unified"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats INFILE [CSVFILE]",
	Short: "compute quality statistics over a mesh",
	Long: `Compute per-mesh quality statistics over the faces of an OFF
mesh: interior angles, edge aspect ratios, kernel area ratios and
area-perimeter ratios. With CSVFILE, a summary row is appended to it.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  doStats,
}

var cfgVal string

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&cfgVal, "config", "", "kernel settings (YAML)")
}

func doStats(cmd *cobra.Command, args []string) {
	set, err := loadSettings(cfgVal)
	check(err)
	mesh, err := polylla.LoadOFF(args[0])
	check(err)

	ctx := &polylla.BuildContext{}
	s := polylla.ComputeStats(mesh, polylla.NewBuilder(set), ctx)

	fmt.Println("Edges per polygon:", s.EdgesPerPoly)
	fmt.Println("Min angle:", s.MinAngle)
	fmt.Println("Max angle:", s.MaxAngle)
	fmt.Println("Min edge ratio:", s.MinEdgeRatio)
	fmt.Println("Max edge ratio:", s.MaxEdgeRatio)
	fmt.Println("Avg edge ratio:", s.AvgEdgeRatio)
	fmt.Println("Min area ratio kernel poly:", s.MinKernelRatio)
	fmt.Println("Max area ratio kernel poly:", s.MaxKernelRatio)
	fmt.Println("Avg area ratio kernel poly:", s.AvgKernelRatio)
	fmt.Println("Min apr:", s.MinAPR)
	fmt.Println("Max apr:", s.MaxAPR)
	fmt.Println("Avg apr:", s.AvgAPR)
	if ctx.LogCount() > 0 {
		ctx.DumpLog("log for %s:", args[0])
	}

	if len(args) == 2 {
		check(polylla.AppendStatsCSV(args[1], filepath.Base(args[0]), s))
	}
}
