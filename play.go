package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/daily"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/terminal"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		vocab, err := loadVocabulary(cfg)
		if err != nil {
			log.Error().Err(err).Msg("failed to load word list")
			return err
		}
		dealer := game.NewDealer(vocab, words.NewSource())

		start := dealer.Start
		if d, _ := cmd.Flags().GetBool("daily"); d {
			start = func() (*game.Session, error) {
				word, _, err := daily.Target(vocab, time.Now(), cfg.DailySalt)
				if err != nil {
					return nil, err
				}
				return dealer.StartWith(word, game.ModeDaily)
			}
		}

		return terminal.New(os.Stdin, os.Stdout).Run(start)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Bool("daily", false, "play today's word instead of a random one")
}
