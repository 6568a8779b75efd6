package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/noetherlab/noether/poly"
	"github.com/noetherlab/noether/ring"
	"github.com/noetherlab/noether/series"
)

var invertCmd = &cobra.Command{
	Use:   "invert",
	Short: "Invert 1 - t in a capped power series ring by Newton iteration",
	Run: func(cmd *cobra.Command, args []string) {
		cap, _ := cmd.Flags().GetInt("cap")
		weight, _ := cmd.Flags().GetInt("weight")

		pr, err := poly.NewRing(poly.Parameters{
			BaseRing: ring.NewIntegerRing(),
			Gens:     1,
			Prefix:   "t",
			Weights:  []int{weight},
		})
		if err != nil {
			log.Fatal(err)
		}

		sr, err := series.NewRing(series.Parameters{PolyRing: pr, Cap: cap})
		if err != nil {
			log.Fatal(err)
		}

		f := sr.One().Sub(sr.Gen(0)).(*series.Series)
		inv, err := f.Inverse()
		if err != nil {
			log.Fatal(err)
		}

		log.Debugf("inverted in %s", sr)
		fmt.Printf("1/(%s) =\n%s\n", f, inv)
	},
}

func init() {
	invertCmd.Flags().Int("cap", 12, "precision cap")
	invertCmd.Flags().Int("weight", 1, "weight of the generator")
	rootCmd.AddCommand(invertCmd)
}
