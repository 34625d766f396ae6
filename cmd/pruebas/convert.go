// cmd/pruebas/convert.go
package pruebas

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/config"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/convert"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/report"
)

// convertCmd implements 'convert', which prints the binary and hexadecimal
// form of every integer in a file.
var convertCmd = &cobra.Command{
	Use:   "convert <fileWithData.txt>",
	Short: "Convert integers to binary and hexadecimal",
	Long:  `The 'convert' command reads one integer per line and reports its binary and hexadecimal form. Lines that are not integers are logged and skipped.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd.OutOrStdout(), args[0], cfg.Outputs.Convert)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("output", "o", config.DefaultConvertOutput, "result file")
	viper.BindPFlag(config.KeyConvertOutput, convertCmd.Flags().Lookup("output"))
}

func runConvert(out io.Writer, path, output string) error {
	sw := startTimer()

	conversions, err := convert.ReadFile(path, log)
	if err != nil {
		return err
	}

	lines := make([]report.Line, 0, len(conversions)+1)
	for _, c := range conversions {
		log.Debugf("converted %s", c)
		lines = append(lines, report.Line{
			Label: strconv.FormatInt(c.Value, 10),
			Value: fmt.Sprintf("binary = %s, hexadecimal = %s", c.Binary, c.Hexadecimal),
		})
	}
	elapsed := strconv.FormatFloat(sw.Elapsed().Seconds(), 'f', -1, 64)
	lines = append(lines, report.Line{Label: "Elapsed Time", Value: elapsed + " seconds"})

	if err := report.Write(out, output, lines); err != nil {
		return err
	}
	log.Infof("results written to %s", output)
	return nil
}
