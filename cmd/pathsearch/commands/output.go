// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathsearch/runner"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// writeResult prints one result as plain text: one line per path or hit.
func writeResult(w io.Writer, res runner.Result) {
	if res.Query.Name != "" {
		fmt.Fprintf(w, "# %s\n", res.Query.Name)
	}
	if res.Err != nil {
		fmt.Fprintf(w, "error: %s\n", res.Error)

		return
	}
	for _, p := range res.Paths {
		fmt.Fprintf(w, "%s\tcost %s\n", strings.Join(p.Vertices, " -> "), p.Cost)
	}
	for _, h := range res.Hits {
		switch {
		case h.Distance != "":
			fmt.Fprintf(w, "%s\t%s\n", h.ID, h.Distance)
		default:
			fmt.Fprintf(w, "%s\t%d\n", h.ID, h.Step)
		}
	}
	if len(res.Paths) == 0 && len(res.Hits) == 0 {
		fmt.Fprintln(w, "no results")
	}
}
