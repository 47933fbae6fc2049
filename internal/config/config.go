package config

import (
	"github.com/bigredeye/marks/pkg/conf"
	"github.com/pkg/errors"
)

const (
	// MarksModeAppend always inserts a new Marks row, so repeated entry for the
	// same student and subject accumulates rows.
	MarksModeAppend = "append"
	// MarksModeReplace removes the previous rows for the student and subject first.
	MarksModeReplace = "replace"
)

type MarksMode = string

type Config struct {
	DataBase struct {
		Path string
	}

	Marks struct {
		Mode          MarksMode
		Transactional bool
	}

	Log struct {
		Level string
		File  string
	}
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	err := conf.ParseConfig(config,
		conf.EnvPrefix("MARKS"),
		conf.File(path),
		conf.Default("DataBase.Path", "marks_management.db"),
		conf.Default("Marks.Mode", MarksModeAppend),
		conf.Default("Marks.Transactional", true),
		conf.Default("Log.Level", "info"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}

	switch config.Marks.Mode {
	case MarksModeAppend, MarksModeReplace:
	default:
		return nil, errors.Errorf("Unknown marks mode %q", config.Marks.Mode)
	}

	return config, nil
}
