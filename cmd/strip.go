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

	"github.com/dangehub/dualtext/internal/overlay"
)

var (
	stripInput  string
	stripOutput string
)

var stripCmd = &cobra.Command{
	Use:   "strip",
	Short: "Remove translation annotations from an HTML document",
	Long: `Remove every annotation node and hidden flag from a previously annotated
document, restoring the original content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(stripInput)
		if err != nil {
			return err
		}

		removed := overlay.Strip(doc)

		if err := writeDocument(doc, stripOutput); err != nil {
			return err
		}

		fmt.Printf("Removed %d annotations from %s\n", removed, stripInput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stripCmd)

	stripCmd.Flags().StringVarP(&stripInput, "input", "i", "", "Input HTML file (required)")
	stripCmd.Flags().StringVarP(&stripOutput, "output", "o", "", "Output HTML file (required)")

	stripCmd.MarkFlagRequired("input")
	stripCmd.MarkFlagRequired("output")
}
