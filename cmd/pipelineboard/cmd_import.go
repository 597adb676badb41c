package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pipelineboard/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.yaml>",
	Short: "Replace the store records with a workbook or YAML dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	report, err := importer.NewCoordinator(st, logger).ImportSync(importer.ImportOptions{
		FilePath: args[0],
		Source:   args[0],
	})
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "imported %d stores (%d rows, %d skipped)\n", report.ImportedRows, report.TotalRows, report.ErrorRows)
	for _, sheet := range report.Sheets {
		for _, e := range sheet.Errors {
			fmt.Fprintf(out, "  %s row %d: %s\n", sheet.SheetName, e.Row, e.Message)
		}
	}
	return nil
}
