// cmd/pruebas/sales.go
package pruebas

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/config"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/report"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sales"
)

// salesCmd implements 'sales', which totals a sales record against a price catalog.
var salesCmd = &cobra.Command{
	Use:   "sales <priceCatalogue.json> <salesRecord.json>",
	Short: "Total the cost of a sales record",
	Long: `The 'sales' command multiplies every sale's quantity by its catalog price and reports the total.
Sales of products missing from the catalog are logged and counted as errors.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSales(cmd.OutOrStdout(), args[0], args[1], cfg.Outputs.Sales)
	},
}

func init() {
	rootCmd.AddCommand(salesCmd)

	salesCmd.Flags().StringP("output", "o", config.DefaultSalesOutput, "result file")
	viper.BindPFlag(config.KeySalesOutput, salesCmd.Flags().Lookup("output"))
}

func runSales(out io.Writer, catalogPath, salesPath, output string) error {
	sw := startTimer()

	catalog, err := sales.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}
	record, err := sales.LoadSales(salesPath)
	if err != nil {
		return err
	}

	summary := sales.Total(catalog, record, log)
	lines := []report.Line{
		{Label: "Total Sales Cost", Value: fmt.Sprintf("$%.2f", summary.Total)},
		{Label: "Errors", Value: strconv.Itoa(summary.Errors)},
		{Label: "Elapsed Time", Value: fmt.Sprintf("%.2f seconds", sw.Elapsed().Seconds())},
	}
	if err := report.Write(out, output, lines); err != nil {
		return err
	}
	log.Infof("results written to %s", output)
	return nil
}
