package debug

import (
	"errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
)

type debug struct {
	Walk     bool `env:"SCREP_DEBUG_WALK,strict"`
	Pipeline bool `env:"SCREP_DEBUG_PIPELINE,strict"`
	Filter   bool `env:"SCREP_DEBUG_FILTER,strict"`
	Parse    bool `env:"SCREP_DEBUG_PARSE,strict"`
}

var d *debug

func init() {
	var err error
	d, err = load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screp: ignoring debug environment: %v\n", err)
	}
}

// load decodes the debug switches from the environment. Having none of
// them set is not an error.
func load() (*debug, error) {
	res := &debug{}
	err := envdecode.Decode(res)
	if err == nil || errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return res, nil
	}
	return &debug{}, err
}

func Walk() bool {
	return d.Walk
}
func Pipeline() bool {
	return d.Pipeline
}
func Filter() bool {
	return d.Filter
}
func Parse() bool {
	return d.Parse
}
