// Command lx200selfcheck walks the command catalog and response catalog
// looking for two classes of programmer error: a catalog entry with no
// mapped response, and a registered response whose zero-touch defaults
// fail to format. It exits 1 if either is found, mirroring the python
// reference's get_unmapped_commands/get_responses_with_bad_defaults
// startup checks.
package main

import (
	"fmt"
	"os"

	"github.com/telescopio-montemayor/lx200-go/response"
)

func main() {
	failed := false

	if missing := response.Unmapped(); len(missing) > 0 {
		failed = true
		fmt.Println("unmapped commands (catalog entry with no response factory):")
		for _, name := range missing {
			fmt.Printf("  - %s\n", name)
		}
	}

	if bad := response.BadDefaults(); len(bad) > 0 {
		failed = true
		fmt.Println("responses with bad defaults (formatting panics or out-of-range):")
		for _, name := range bad {
			fmt.Printf("  - %s\n", name)
		}
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("ok: every catalog entry has a response, every response formats cleanly")
}
