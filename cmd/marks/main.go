package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/marks/internal/config"
	"github.com/bigredeye/marks/internal/console"
	"github.com/bigredeye/marks/internal/database"
	lf "github.com/bigredeye/marks/internal/logfield"
	"github.com/bigredeye/marks/internal/marks"
	"github.com/bigredeye/marks/internal/menu"
	"github.com/bigredeye/marks/internal/scorer"
	zlog "github.com/bigredeye/marks/pkg/log"
)

var (
	log        = zap.NewNop()
	conf       *config.Config
	configPath string
)

var (
	rootCmd = &cobra.Command{
		Use:               "marks",
		Short:             "Student marks management",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context())
		},
	}

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dump various info",
	}
)

func setup(cmd *cobra.Command, args []string) error {
	var err error
	conf, err = config.ParseConfig(configPath)
	if err != nil {
		return err
	}

	log, err = zlog.Init(zlog.Options{Level: conf.Log.Level, File: conf.Log.File})
	return err
}

func openDataBase() (*database.DataBase, error) {
	db, err := database.OpenDataBase(log, conf.DataBase.Path)
	if err != nil {
		log.Error("Can't open database", lf.DataBase(conf.DataBase.Path), zap.Error(err))
		return nil, errors.Wrap(err, "Can't open database")
	}
	return db, nil
}

// initDataBase opens the store and creates missing tables. Schema errors are
// already logged and never stop the program.
func initDataBase(ctx context.Context, c *console.Console) (*database.DataBase, error) {
	db, err := openDataBase()
	if err != nil {
		return nil, err
	}

	if err := db.InitSchema(ctx, log); err != nil {
		log.Warn("Schema is incomplete", zap.Error(err))
	}
	c.Println("Database initialized successfully!")

	return db, nil
}

func stdConsole() *console.Console {
	return console.New(os.Stdin, os.Stdout)
}

func runMenu(ctx context.Context) error {
	c := stdConsole()
	db, err := initDataBase(ctx, c)
	if err != nil {
		return err
	}
	defer db.Close()

	proxy := &database.DataBaseProxy{DataBase: db, Conf: conf}
	m := menu.New(c, marks.NewUpdater(proxy, c, log), scorer.NewScorer(db), log)
	return m.Run(ctx)
}

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config")

	dumpCmd.AddCommand(makeDumpStatsCommand())
	dumpCmd.AddCommand(makeDumpBackupCommand())
	rootCmd.AddCommand(makeInitCommand())
	rootCmd.AddCommand(makeUpdateCommand())
	rootCmd.AddCommand(makeResultsCommand())
	rootCmd.AddCommand(makeSeedCommand())
	rootCmd.AddCommand(makeRestoreCommand())
	rootCmd.AddCommand(dumpCmd)
}

func init() {
	initCommands()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	zlog.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s\n", err.Error())
		os.Exit(1)
	}
}
