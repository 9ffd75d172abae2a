//go:build !linux

package cmd

import (
	"errors"
)

func measureCounters(f func() error) (cycles, instructions uint64, err error) {
	err = errors.New("hardware counters are only available on linux")
	return
}
