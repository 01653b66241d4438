package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// config comes from the [advent] section of an ini file:
//
//	[advent]
//	verbose = true
//	trace = false
//	fgprof = /tmp/advent.pprof
type config struct {
	verbose bool   // log search statistics
	trace   bool   // log every instruction of forward runs
	fgprof  string // write an fgprof profile here
}

const configEnv = "ADVENT_CONFIG"

// loadConfig reads $ADVENT_CONFIG if set, and otherwise
// ~/.config/advent.ini if it exists.
func loadConfig() (config, error) {
	if path := os.Getenv(configEnv); path != "" {
		return readConfig(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, nil
	}
	path := filepath.Join(home, ".config", "advent.ini")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config{}, nil
	}
	return readConfig(path)
}

func readConfig(path string) (config, error) {
	f, err := ini.LoadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	conf, err := parseConfig(f)
	if err != nil {
		return config{}, fmt.Errorf("bad config (%s): %s", path, err)
	}
	return conf, nil
}

func parseConfig(f ini.File) (config, error) {
	var conf config
	for key, val := range f.Section("advent") {
		var err error
		switch key {
		case "verbose":
			conf.verbose, err = strconv.ParseBool(val)
		case "trace":
			conf.trace, err = strconv.ParseBool(val)
		case "fgprof":
			conf.fgprof = val
		default:
			return config{}, fmt.Errorf("unknown key %q", key)
		}
		if err != nil {
			return config{}, fmt.Errorf("key %q: %s", key, err)
		}
	}
	return conf, nil
}
