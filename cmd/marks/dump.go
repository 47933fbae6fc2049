package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/go-units"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	lf "github.com/bigredeye/marks/internal/logfield"
	"github.com/bigredeye/marks/pkg/targz"
)

func makeDumpStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Dump row counts and database size",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDataBase()
			if err != nil {
				return err
			}
			defer db.Close()

			counts, err := db.CountRows(cmd.Context())
			if err != nil {
				return err
			}
			for _, count := range counts {
				fmt.Printf("%s\t%d\n", count.Table, count.Rows)
			}

			info, err := os.Stat(db.Path())
			if err != nil {
				return err
			}
			fmt.Printf("Size\t%s\n", units.HumanSize(float64(info.Size())))

			return nil
		},
	}
}

func makeDumpBackupCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive the database file into a tar.gz",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, "Failed to create archive")
			}
			defer file.Close()

			if err := targz.Pack(file, conf.DataBase.Path); err != nil {
				return errors.Wrap(err, "Failed to pack database")
			}

			log.Info("Backed up database", lf.DataBase(conf.DataBase.Path), lf.Archive(out))
			return file.Close()
		},
	}

	cmd.Flags().StringVar(&out, "out", "marks_management.tar.gz", "Archive path")

	return cmd
}

func makeRestoreCommand() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace the database file with the one from a backup archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			return restore(in, conf.DataBase.Path)
		},
	}

	cmd.Flags().StringVar(&in, "in", "marks_management.tar.gz", "Archive path")

	return cmd
}

func restore(archive, path string) error {
	file, err := os.Open(archive)
	if err != nil {
		return errors.Wrap(err, "Failed to open archive")
	}
	defer file.Close()

	dir, err := os.MkdirTemp(filepath.Dir(path), ".restore-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	if err := targz.ExtractToDir(file, dir); err != nil {
		return errors.Wrap(err, "Failed to extract archive")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) != 1 || entries[0].IsDir() {
		return errors.Errorf("Archive %s must hold exactly one database file", archive)
	}

	if err := os.Rename(filepath.Join(dir, entries[0].Name()), path); err != nil {
		return errors.Wrap(err, "Failed to replace database")
	}

	log.Info("Restored database", lf.DataBase(path), lf.Archive(archive))
	return nil
}
