package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxLineBytes bounds a single stdin line.
const maxLineBytes = 1 << 20 // 1 MiB

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert text given as arguments or line by line from stdin",
		Long: `Converts the arguments, joined with single spaces, as one input.
Without arguments every stdin line is converted on its own; line
breaks are kept.`,
		Example: `  translit convert Bismillahir Rahmanir Raheem
  translit convert "Allahu  Akbar"
  cat verses.txt | translit convert`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				_, err := fmt.Fprintln(out, a.engine.Convert(strings.Join(args, " ")))
				return err
			}

			n, err := eachLine(cmd.InOrStdin(), func(line string) error {
				_, err := fmt.Fprintln(out, a.engine.Convert(line))
				return err
			})
			if err != nil {
				return err
			}
			a.logger.Debug("converted stdin", zap.Int("lines", n))
			return nil
		},
	}
}

// eachLine calls fn for every line of r without the trailing newline.
func eachLine(r io.Reader, fn func(string) error) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for sc.Scan() {
		if err := fn(sc.Text()); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("read input: %w", err)
	}
	return n, nil
}
