package appshell

import (
	"context"
	"io"
	"slices"
	"testing"
)

func TestExec(t *testing.T) {
	var got []string
	run := func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}
	if code := Exec(context.Background(), run, nil, io.Discard, io.Discard); code != 0 {
		t.Fatalf("code=%d", code)
	}
	if !slices.Equal(got, []string{"-h"}) {
		t.Fatalf("empty argv should become -h, got %v", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := Exec(ctx, run, []string{"Fe56"}, io.Discard, io.Discard); code != 130 {
		t.Fatalf("cancelled run: want 130, got %d", code)
	}
	fail := func(context.Context, []string, io.Writer, io.Writer) int { return 2 }
	if code := Exec(ctx, fail, []string{"x"}, io.Discard, io.Discard); code != 2 {
		t.Fatalf("non-zero codes pass through, got %d", code)
	}
}
