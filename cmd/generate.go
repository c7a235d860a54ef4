package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vabshroo/builgen/pkg/action/generate"
	"github.com/vabshroo/builgen/pkg/action/snapshot"
	"github.com/vabshroo/builgen/pkg/builder"
)

func init() {
	rootCmd.AddCommand(NewGenCommand())
}

func NewGenCommand() *cobra.Command {
	var (
		options = builder.NewOptions()
		version string
	)

	// genCmd represents the builgen gen command
	var genCmd = &cobra.Command{
		Use:   "gen",
		Short: "generate builder members",
		Long:  "Generate the private constructor, getters, nested Builder type and static factory for a class",
		RunE: func(c *cobra.Command, args []string) error {
			if options.Manifest != "" {
				out, err := snapshot.Generate(options, options.Manifest, version)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), out)
				return nil
			}
			out, err := generate.Run(options)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintln(c.OutOrStdout(), out)
			}
			return nil
		},
	}
	genCmd.PersistentFlags().StringVarP(&options.Input, "input", "i", "", "Java source file or Go package directory")
	genCmd.PersistentFlags().StringVarP(&options.Lang, "lang", "L", "", "target language (java, go); inferred from input when empty")
	genCmd.PersistentFlags().StringVarP(&options.Class, "class", "c", "", "class or struct to generate for")
	genCmd.PersistentFlags().StringVarP(&options.Output, "output", "o", "", "output file (defaults to rewriting the input)")
	genCmd.PersistentFlags().BoolVarP(&options.DryRun, "dry-run", "n", false, "print the result instead of writing it")
	genCmd.PersistentFlags().StringVarP(&options.Manifest, "manifest", "m", "", "record the run in this manifest file")
	genCmd.PersistentFlags().StringVarP(&version, "snapshot-version", "V", "", "version label recorded with --manifest")
	_ = genCmd.MarkPersistentFlagRequired("input")

	return genCmd
}
