package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Five-letter word guessing game",
	Long:  `Play in the terminal, or serve the game over HTTP and WebSocket.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetString("words"); v != "" {
			cfg.VocabFile = v
		}
		setupLogging(cfg.LogLevel)
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("words", "", "word list file (default: embedded list, or WORDLE_VOCAB_FILE)")
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// loadVocabulary loads the configured word list once for the process.
func loadVocabulary(c config.Config) (*words.Vocabulary, error) {
	var opts []words.LoadOption
	if !c.VocabStrict {
		opts = append(opts, words.Permissive())
	}
	if c.VocabExpected > 0 {
		opts = append(opts, words.WithExpectedCount(c.VocabExpected))
	}
	if c.VocabFile == "" {
		return words.Default(opts...)
	}
	return words.LoadFile(c.VocabFile, opts...)
}
