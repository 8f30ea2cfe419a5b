package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Load the word list and report its size",
	Long:  `Loads the configured word list with the configured policy; exits non-zero if it is rejected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vocab, err := loadVocabulary(cfg)
		if err != nil {
			return err
		}
		src := cfg.VocabFile
		if src == "" {
			src = "embedded"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words\n", src, vocab.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}
