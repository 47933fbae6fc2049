package main

import (
	"github.com/spf13/cobra"

	"github.com/bigredeye/marks/internal/menu"
	"github.com/bigredeye/marks/internal/scorer"
)

func makeResultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Print students sorted by total marks",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDataBase()
			if err != nil {
				return err
			}
			defer db.Close()

			menu.ShowResults(cmd.Context(), stdConsole(), scorer.NewScorer(db), log)
			return nil
		},
	}
}

func makeInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := initDataBase(cmd.Context(), stdConsole())
			if err != nil {
				return err
			}
			return db.Close()
		},
	}
}
