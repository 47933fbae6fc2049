package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/marks/internal/database"
	lf "github.com/bigredeye/marks/internal/logfield"
	"github.com/bigredeye/marks/internal/marks"
	"github.com/bigredeye/marks/internal/roster"
)

func makeUpdateCommand() *cobra.Command {
	var teacher uint

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Enter marks for the subject of a teacher",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := stdConsole()
			db, err := initDataBase(cmd.Context(), c)
			if err != nil {
				return err
			}
			defer db.Close()

			proxy := &database.DataBaseProxy{DataBase: db, Conf: conf}
			err = marks.NewUpdater(proxy, c, log).Update(cmd.Context(), teacher)
			if err != nil && !marks.IsAborted(err) {
				log.Error("Failed to update marks", lf.TeacherID(teacher), zap.Error(err))
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&teacher, "teacher", 0, "Teacher ID")
	_ = cmd.MarkFlagRequired("teacher")

	return cmd
}

func makeSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Provision subjects, students and teachers from a YAML roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := roster.Load(file)
			if err != nil {
				return err
			}

			db, err := initDataBase(cmd.Context(), stdConsole())
			if err != nil {
				return err
			}
			defer db.Close()

			stats, err := roster.Seed(cmd.Context(), db, log, r)
			if err != nil {
				return err
			}

			log.Info("Seeded roster",
				lf.RosterFile(file),
				zap.Int("subjects", stats.Subjects),
				zap.Int("students", stats.Students),
				zap.Int("teachers", stats.Teachers),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "roster.yaml", "Roster file")

	return cmd
}
