package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RvanB/marc-lsp/internal/marcdata"
	"github.com/RvanB/marc-lsp/internal/marcdata/database"
)

func newDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Manage the MARC reference data store",
	}

	cmd.AddCommand(newDataImportCommand())
	cmd.AddCommand(newDataInfoCommand())

	return cmd
}

func newDataImportCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "import <database>",
		Short: "Import JSON definitions into a sqlite reference database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadData(dataDir)
			if err != nil {
				return err
			}

			db, err := database.Open(args[0])
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Import(db, data); err != nil {
				return err
			}

			tags, fixed, err := db.Counts()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tag definitions and %d fixed-field layouts into %s\n",
				tags, fixed, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "",
		"directory of JSON definition files (default: embedded dataset)")

	return cmd
}

func newDataInfoCommand() *cobra.Command {
	var dataDir string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the size of the reference dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath != "" {
				db, err := database.Open(dbPath)
				if err != nil {
					return err
				}
				defer db.Close()

				tags, fixed, err := db.Counts()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tag definitions, %d fixed-field layouts\n",
					dbPath, tags, fixed)
				return nil
			}

			data, err := loadData(dataDir)
			if err != nil {
				return err
			}
			bib, hold, fixed := data.Counts()
			fmt.Fprintf(cmd.OutOrStdout(), "%d bibliographic tags, %d holdings tags, %d fixed-field layouts\n",
				bib, hold, fixed)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory of JSON definition files")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to a sqlite reference database")

	return cmd
}

func loadData(dataDir string) (*marcdata.StaticData, error) {
	if dataDir != "" {
		return marcdata.LoadDir(dataDir)
	}
	return marcdata.Default()
}
