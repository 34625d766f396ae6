// cmd/pruebas/statistics.go
package pruebas

import (
	"io"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/config"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/ingest"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/report"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/statistics"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/timer"
)

var startTimer = timer.Start

// statisticsCmd implements 'statistics', which computes descriptive
// statistics over a file holding one number per line.
var statisticsCmd = &cobra.Command{
	Use:   "statistics <fileWithData.txt>",
	Short: "Compute mean, median, mode, variance and standard deviation",
	Long: `The 'statistics' command reads one number per line, logs and skips lines that are not numbers,
and reports the mean, median, mode, standard deviation and sample variance of the rest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatistics(cmd.OutOrStdout(), args[0], cfg.Outputs.Statistics)
	},
}

func init() {
	rootCmd.AddCommand(statisticsCmd)

	statisticsCmd.Flags().StringP("output", "o", config.DefaultStatisticsOutput, "result file")
	viper.BindPFlag(config.KeyStatisticsOutput, statisticsCmd.Flags().Lookup("output"))
}

// runStatistics reads path, computes its statistics and writes the report to
// out and to the file named output. No result file is written when path holds
// no valid observation.
func runStatistics(out io.Writer, path, output string) error {
	sw := startTimer()

	data, err := ingest.ReadFile(path, log)
	if err != nil {
		return err
	}
	log.Debugf("read %d observations and %d invalid lines from %s", len(data.Observations), len(data.Invalid), path)
	if len(data.Observations) == 0 {
		return ewrap.Wrap(sentinel.ErrNoValidData, path)
	}

	rec, err := statistics.Compute(data.Observations)
	if err != nil {
		return err
	}

	if err := report.Write(out, output, report.StatisticsLines(rec, sw.Elapsed())); err != nil {
		return err
	}
	log.Infof("results written to %s", output)
	return nil
}
