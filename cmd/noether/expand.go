package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/noetherlab/noether/poly"
	"github.com/noetherlab/noether/ring"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Sample a random integer polynomial and expand one of its powers",
	Run: func(cmd *cobra.Command, args []string) {
		gens, _ := cmd.Flags().GetInt("gens")
		terms, _ := cmd.Flags().GetInt("terms")
		power, _ := cmd.Flags().GetInt("power")
		seed, _ := cmd.Flags().GetString("seed")
		sparse, _ := cmd.Flags().GetBool("sparse")

		r, err := poly.NewRing(poly.Parameters{
			BaseRing: ring.NewIntegerRing(),
			Gens:     gens,
			Prefix:   "x",
			Sparse:   sparse,
		})
		if err != nil {
			log.Fatal(err)
		}

		sampler, err := poly.NewSeededSampler(r, seed, 4, 9)
		if err != nil {
			log.Fatal(err)
		}

		p := sampler.ReadNew(terms)
		log.Debugf("sampled %d terms in %s", p.Terms().NumTerms(), r)

		q := p.Pow(power).(*poly.Polynomial)
		log.Debugf("expansion has %d terms", q.Terms().NumTerms())

		fmt.Printf("(%s)^%d =\n%s\n", p, power, q)
	},
}

func init() {
	expandCmd.Flags().Int("gens", 2, "number of generators")
	expandCmd.Flags().Int("terms", 3, "number of sampled terms")
	expandCmd.Flags().Int("power", 2, "power to expand")
	expandCmd.Flags().String("seed", "noether", "sampler seed label")
	expandCmd.Flags().Bool("sparse", false, "use the sparse monomial representation")
	rootCmd.AddCommand(expandCmd)
}
