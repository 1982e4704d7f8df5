package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"postdeck/internal/cli"
)

// rewriteDirectPostLookupArgs makes `postdeck 42` work like
// `postdeck posts get 42`. Cobra treats the first non-flag token as a
// subcommand, so argv is rewritten before parsing.
func rewriteDirectPostLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}
	for i, a := range argv[1:] {
		if strings.HasPrefix(a, "-") {
			continue
		}
		if id, err := strconv.Atoi(a); err == nil && id > 0 {
			out := append([]string{}, argv[:i+1]...)
			out = append(out, "posts", "get")
			out = append(out, argv[i+1:]...)
			return out
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectPostLookupArgs(os.Args)

	cmd, err := cli.NewRootCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
