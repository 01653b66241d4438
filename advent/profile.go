package main

import (
	"fmt"
	"os"

	"github.com/felixge/fgprof"
)

// withProfile runs fn, recording an fgprof profile (in pprof format) to
// path if path is non-empty.
func withProfile(path string, fn func() error) (err error) {
	if path == "" {
		return fn()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create profile: %s", err)
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	defer func() {
		if serr := stop(); serr != nil && err == nil {
			err = fmt.Errorf("error writing profile: %s", serr)
		}
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn()
}
