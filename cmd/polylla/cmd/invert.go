package cmd

import (
	"fmt"
	"os"

	polylla "github.com/WinterNacho/Polylla-Unified"
	"github.com/spf13/cobra"
)

// invertCmd represents the invert command
var invertCmd = &cobra.Command{
	Use:   "invert INFILE",
	Short: "reverse the vertex order of every face",
	Long: `Rewrite an OFF mesh with the vertex order of every face
reversed, as INFILE_inverted.off. Flips the orientation of all faces.`,
	Args: cobra.ExactArgs(1),
	Run:  doInvert,
}

func init() {
	RootCmd.AddCommand(invertCmd)
}

func doInvert(cmd *cobra.Command, args []string) {
	in, err := os.Open(args[0])
	check(err)
	defer in.Close()

	out := polylla.OutputName(args[0], "_inverted")
	f, err := os.Create(out)
	check(err)
	defer f.Close()

	check(polylla.InvertFaces(in, f))
	fmt.Println("Written inverted mesh to", out)
}
