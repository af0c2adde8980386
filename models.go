package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wine_blog_writer/generator"
)

var modelsLength string

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models with estimated cost and time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := generator.CatalogFor(appConfig.LLM.Provider).WithDefault(appConfig.LLM.Model)
		length, _ := generator.LookupLength(modelsLength)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "MODEL\tLABEL\tCOST (KRW)\tTIME\n")
		for _, m := range cat.Models() {
			est := cat.Estimate(m.ID, length.Key)
			marker := ""
			if m.ID == cat.DefaultModel() {
				marker = " *"
			}
			fmt.Fprintf(w, "%s%s\t%s\t₩%.1f\t~%ds\n", m.ID, marker, m.Label, est.CostKRW, est.Seconds)
		}
		fmt.Fprintf(w, "\nlength: %s (%s)\n", length.Key, length.Label)
		return w.Flush()
	},
}

func init() {
	modelsCmd.Flags().StringVar(&modelsLength, "length", generator.DefaultLength, "length tier used for the estimate")
	rootCmd.AddCommand(modelsCmd)
}
