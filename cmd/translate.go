/*
Copyright © 2026 dangehub

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dangehub/dualtext/internal/config"
	"github.com/dangehub/dualtext/internal/overlay"
)

var (
	inputFile  string
	outputFile string
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Annotate an HTML document with translations",
	Long: `Translate the eligible text blocks of an HTML document and write a copy
with each translation inserted as a sibling annotation of its original.

The original text is never modified. Use "dualtext strip" on the output to
restore the document, or --hide-original to mark originals with a
presentational hidden class.

Backends:
  - simple   POST {q, source, target, format} to --api-url
  - openai   chat completions with --model and prompt templates; the
             placeholders {text}, {from} and {to} are substituted
  - google   Google Cloud Translation API (--credentials or --api-key)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		doc, err := readDocument(inputFile)
		if err != nil {
			return err
		}

		sess := overlay.NewSession(doc, cfg, newLogger())
		if err := sess.Translate(context.Background(), nil); err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}

		if err := writeDocument(doc, outputFile); err != nil {
			return err
		}

		fmt.Printf("Successfully annotated %s -> %s (%s to %s)\n", inputFile, outputFile, cfg.FromLang, cfg.ToLang)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input HTML file (required)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output HTML file (required)")

	defaults := config.Default()
	translateCmd.Flags().String("api-type", defaults.APIType, "Backend type: simple, openai, or google")
	translateCmd.Flags().String("api-url", "", "Backend endpoint URL")
	translateCmd.Flags().String("api-key", "", "Backend API key")
	translateCmd.Flags().String("model", "", "Model identifier (openai backend)")
	translateCmd.Flags().StringP("from", "s", defaults.FromLang, "Source language code")
	translateCmd.Flags().StringP("to", "t", defaults.ToLang, "Target language code")
	translateCmd.Flags().String("system-prompt", "", "System prompt template (openai backend)")
	translateCmd.Flags().String("user-prompt", defaults.UserPrompt, "User prompt template (openai backend)")
	translateCmd.Flags().StringSlice("skip", nil, "CSS selectors whose subtrees are never translated")
	translateCmd.Flags().Bool("hide-original", false, "Hide originals behind a presentational class")
	translateCmd.Flags().String("credentials", "", "Google Cloud credentials file (google backend)")
	translateCmd.Flags().Duration("timeout", defaults.Timeout, "Per-request timeout")

	viper.BindPFlag("api_type", translateCmd.Flags().Lookup("api-type"))
	viper.BindPFlag("api_url", translateCmd.Flags().Lookup("api-url"))
	viper.BindPFlag("api_key", translateCmd.Flags().Lookup("api-key"))
	viper.BindPFlag("model", translateCmd.Flags().Lookup("model"))
	viper.BindPFlag("from_lang", translateCmd.Flags().Lookup("from"))
	viper.BindPFlag("to_lang", translateCmd.Flags().Lookup("to"))
	viper.BindPFlag("system_prompt", translateCmd.Flags().Lookup("system-prompt"))
	viper.BindPFlag("user_prompt", translateCmd.Flags().Lookup("user-prompt"))
	viper.BindPFlag("skip_selectors", translateCmd.Flags().Lookup("skip"))
	viper.BindPFlag("hide_original", translateCmd.Flags().Lookup("hide-original"))
	viper.BindPFlag("credentials", translateCmd.Flags().Lookup("credentials"))
	viper.BindPFlag("timeout", translateCmd.Flags().Lookup("timeout"))

	translateCmd.MarkFlagRequired("input")
	translateCmd.MarkFlagRequired("output")
}
