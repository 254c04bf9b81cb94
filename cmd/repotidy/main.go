// Command repotidy keeps a directory of git repositories tidy: it commits
// pending work with classified titles, updates changelogs and promotes
// staging into master through auto-merged pull requests.
package main

import (
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
