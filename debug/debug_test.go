package debug

import (
	"testing"
)

func TestLoad(t *testing.T) {
	for _, k := range []string{"SCREP_DEBUG_WALK", "SCREP_DEBUG_PIPELINE", "SCREP_DEBUG_FILTER", "SCREP_DEBUG_PARSE"} {
		t.Setenv(k, "")
	}
	got, err := load()
	if err != nil {
		t.Fatalf("no switches set: %v", err)
	}
	if *got != (debug{}) {
		t.Errorf("no switches set: got %+v", *got)
	}

	t.Setenv("SCREP_DEBUG_WALK", "true")
	t.Setenv("SCREP_DEBUG_FILTER", "1")
	got, err = load()
	if err != nil {
		t.Fatal(err)
	}
	if *got != (debug{Walk: true, Filter: true}) {
		t.Errorf("got %+v", *got)
	}

	t.Setenv("SCREP_DEBUG_WALK", "yes")
	got, err = load()
	if err == nil {
		t.Fatal("expected error for malformed SCREP_DEBUG_WALK")
	}
	if *got != (debug{}) {
		t.Errorf("malformed environment: got %+v", *got)
	}
}
