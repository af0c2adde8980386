package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wine_blog_writer/generator"
)

var genReq generator.GenerationRequest

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write one post and print it",
	Long: `Run the full pipeline once. The post goes to stdout; token usage and
the estimated cost go to stderr.

Example:
  winepost generate --name "Chateau Test" --region Bordeaux --vintage 2018 --length short`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genReq.Prompt, "prompt", "", "free-form description of the wine")
	f.StringVar(&genReq.WineName, "name", "", "wine name")
	f.StringVar(&genReq.Region, "region", "", "region")
	f.StringVar(&genReq.Vintage, "vintage", "", "vintage")
	f.StringVar(&genReq.Variety, "variety", "", "grape variety")
	f.StringSliceVar(&genReq.Highlights, "highlight", nil, "point to emphasize (repeatable)")
	f.StringVar(&genReq.Length, "length", generator.DefaultLength, "length tier: short, normal, detailed")
	f.StringVar(&genReq.Model, "model", "", "model id (defaults to llm.model or the catalog default)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// validate before building clients so bad input never costs a call
	if err := genReq.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout.Std())
	defer cancel()

	p, err := buildPipeline(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	res, err := p.agent.Generate(ctx, genReq)
	if err != nil {
		return errors.New(generator.ClientMessage(err, cfg.ProviderName(), "글 생성"))
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Content)
	cost := p.agent.Catalog().Cost(res.Model, res.Usage)
	fmt.Fprintf(os.Stderr, "model=%s corrected=%t tokens=%d (prompt %d, completion %d) cost≈₩%.1f\n",
		res.Model, res.Corrected, res.Usage.TotalTokens, res.Usage.PromptTokens, res.Usage.CompletionTokens,
		cost*generator.USDToKRW)
	return nil
}
