package main

import "os"
import "runtime/pprof"

import "github.com/pkg/errors"

// startProfile writes a cpu profile to name until the returned stop is called.
// The profile can be fed back to the compiler with -pgo.
func startProfile(name string) (stop func(), err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrap(err, "create profile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "start profile")
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
