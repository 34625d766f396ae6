// cmd/pruebas/wordcount.go
package pruebas

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/config"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/report"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/wordcount"
)

// wordCountCmd implements 'wordcount', which counts every distinct word of a text file.
var wordCountCmd = &cobra.Command{
	Use:   "wordcount <fileWithData.txt>",
	Short: "Count the occurrences of each word",
	Long:  `The 'wordcount' command splits a text file on whitespace and reports how many times each distinct word occurs, in order of first appearance.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWordCount(cmd.OutOrStdout(), args[0], cfg.Outputs.WordCount)
	},
}

func init() {
	rootCmd.AddCommand(wordCountCmd)

	wordCountCmd.Flags().StringP("output", "o", config.DefaultWordCountOutput, "result file")
	viper.BindPFlag(config.KeyWordCountOutput, wordCountCmd.Flags().Lookup("output"))
}

func runWordCount(out io.Writer, path, output string) error {
	sw := startTimer()

	counts, err := wordcount.ReadFile(path)
	if err != nil {
		return err
	}

	lines := make([]report.Line, 0, len(counts)+2)
	for _, c := range counts {
		lines = append(lines, report.Line{Label: c.Word, Value: strconv.Itoa(c.Count)})
	}
	lines = append(lines,
		report.Blank,
		report.Line{Label: "Elapsed Time", Value: fmt.Sprintf("%.4f seconds", sw.Elapsed().Seconds())},
	)

	if err := report.Write(out, output, lines); err != nil {
		return err
	}
	log.Infof("results written to %s", output)
	return nil
}
