package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List saved results or show one of them",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log, _ := setup()

		historyFile := strings.TrimSpace(viper.GetString("history-file"))
		if historyFile == "" {
			log.Fatal("history file is not configured", zap.String("hint", "set history-file in the config or pass --history-file"))
		}

		h, err := history.Load(historyFile)
		if err != nil {
			log.Fatal("loading history", zap.Error(err), zap.String("filename", historyFile))
		}

		out := cmd.OutOrStdout()

		if dump, _ := cmd.Flags().GetBool("dump"); dump {
			filename, err := h.DumpToTmpFile()
			if err != nil {
				log.Fatal("dump history to file", zap.Error(err))
			}
			log.Info("dumping history to file", zap.String("filename", filename), zap.Int("entries", h.Len()))
			return
		}

		if len(args) == 0 {
			if h.Len() == 0 {
				log.Info("history is empty", zap.String("filename", historyFile))
				return
			}
			printHistory(out, h)
			return
		}

		var (
			entry *history.Entry
			ok    bool
		)
		if args[0] == "latest" {
			entry = h.Latest()
			ok = entry != nil
		} else {
			entry, ok = h.Find(args[0])
		}
		if !ok {
			log.Fatal("history entry not found", zap.String("id", args[0]))
		}

		if err := printJSON(out, entry); err != nil {
			log.Fatal("writing output", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Bool("dump", false, "copy the whole history to a temporary file")
}
