package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thisisniagahub/Quran-Pulse-sub001/diacritic"
)

// statsReport is one line of stats output.
type statsReport struct {
	Text          string          `json:"text"`
	HasDiacritics bool            `json:"hasDiacritics"`
	Stats         diacritic.Stats `json:"stats"`
}

func newStatsCmd(a *app) *cobra.Command {
	var convertFirst bool

	cmd := &cobra.Command{
		Use:   "stats [text...]",
		Short: "Report diacritic counts as JSON lines",
		Long: `Prints one JSON object per input with the diacritic counts by
category: longVowels, emphatics, gutturals and hamza. Arguments form a
single input; without arguments every stdin line is reported.`,
		Example: `  translit stats "Ṣalāh"
  translit stats --convert Bismillahir Rahmanir Raheem`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)

			report := func(text string) error {
				if convertFirst {
					text = a.engine.Convert(text)
				}
				return enc.Encode(statsReport{
					Text:          text,
					HasDiacritics: diacritic.HasDiacritics(text),
					Stats:         diacritic.DiacriticStats(text),
				})
			}

			if len(args) > 0 {
				return report(strings.Join(args, " "))
			}
			_, err := eachLine(cmd.InOrStdin(), report)
			return err
		},
	}

	cmd.Flags().BoolVar(&convertFirst, "convert", false, "convert the text before counting")
	return cmd
}
