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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dangehub/dualtext/internal/selector"
)

var blocksInput string

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "List the text blocks a translation pass would select",
	Long: `Dry run of the block selector: print each eligible leaf text fragment in
document order, without calling any backend. Useful for tuning --skip
selectors before spending API quota.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.BindPFlag("skip_selectors", cmd.Flags().Lookup("skip"))

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		doc, err := readDocument(blocksInput)
		if err != nil {
			return err
		}

		blocks := selector.Collect(doc.Selection, cfg.SkipSelectors)
		for i, b := range blocks {
			fmt.Printf("%3d  <%s>  %s\n", i+1, b.Node.Data, b.Text)
		}
		fmt.Printf("\n%d blocks selected\n", len(blocks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(blocksCmd)

	blocksCmd.Flags().StringVarP(&blocksInput, "input", "i", "", "Input HTML file (required)")
	blocksCmd.Flags().StringSlice("skip", nil, "CSS selectors whose subtrees are excluded")

	blocksCmd.MarkFlagRequired("input")
}
