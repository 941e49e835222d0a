package codegen

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
)

// helperArgs invokes the test binary itself as the generator, steering
// it into TestHelperProcess.
func helperArgs(mode string) []string {
	return []string{"-test.run=TestHelperProcess", "--", mode}
}

func TestExecRunner_Run(t *testing.T) {
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")

	r := NewRunner()
	stderr, err := r.Run(context.Background(), "", os.Args[0], helperArgs("warn"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(stderr), "schema uses legacy syntax") {
		t.Fatalf("expected captured stderr, got %q", stderr)
	}
}

func TestExecRunner_RunFailure(t *testing.T) {
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")

	r := NewRunner()
	stderr, err := r.Run(context.Background(), "", os.Args[0], helperArgs("fail"))
	if err == nil {
		t.Fatal("expected non-zero exit to surface as an error")
	}

	if !strings.Contains(string(stderr), "cannot parse schema") {
		t.Fatalf("expected stderr alongside the failure, got %q", stderr)
	}
}

func TestExecRunner_UnknownExecutable(t *testing.T) {
	r := NewRunner()

	_, err := r.Run(context.Background(), "", "graphql-test-no-such-generator", nil)
	if err == nil {
		t.Fatal("expected lookup failure")
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	if len(args) == 0 {
		os.Exit(0)
	}

	switch args[0] {
	case "warn":
		fmt.Fprintln(os.Stderr, "deprecation: schema uses legacy syntax")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "cannot parse schema")
		os.Exit(2)
	}
	os.Exit(0)
}
