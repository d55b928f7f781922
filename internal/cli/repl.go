package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
)

// RunREPL reads actions from in, one JSON object per line
// ({"type": "counter/increment", "payload": 1}), dispatches them, and writes
// the rendered tree to out after every state change. Lines starting with ':'
// are commands: ":state" prints the tree, ":save <key>" and ":load <key>"
// persist and restore snapshots (":load" only works before the first
// dispatch), ":quit" exits.
func RunREPL(ctx context.Context, in io.Reader, out io.Writer, st *arbor.Store, render func(domain.Tree, uint64) string) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			fields := strings.Fields(line)
			switch fields[0] {
			case ":quit", ":q":
				return nil
			case ":state":
				fmt.Fprint(out, render(st.GetState(), st.Version()))
			case ":save":
				if len(fields) != 2 {
					fmt.Fprintln(out, "usage: :save <key>")
					continue
				}
				if err := st.SaveSnapshot(ctx, fields[1]); err != nil {
					fmt.Fprintf(out, "save failed: %v\n", err)
					continue
				}
				fmt.Fprintf(out, "saved %q\n", fields[1])
			case ":load":
				if len(fields) != 2 {
					fmt.Fprintln(out, "usage: :load <key>")
					continue
				}
				if err := st.RestoreSnapshot(ctx, fields[1]); err != nil {
					fmt.Fprintf(out, "load failed: %v\n", err)
					continue
				}
				fmt.Fprint(out, render(st.GetState(), st.Version()))
			default:
				fmt.Fprintf(out, "unknown command %q (try :state, :save <key>, :load <key> or :quit)\n", fields[0])
			}
			continue
		}

		var action domain.Action
		if err := json.Unmarshal([]byte(line), &action); err != nil {
			fmt.Fprintf(out, "invalid action: %v\n", err)
			continue
		}

		before := st.Version()
		if _, err := st.Dispatch(action); err != nil {
			fmt.Fprintf(out, "dispatch failed: %v\n", err)
			continue
		}
		if st.Version() == before {
			fmt.Fprintf(out, "no change (%s)\n", action.Type)
			continue
		}
		fmt.Fprint(out, render(st.GetState(), st.Version()))
	}
	return scanner.Err()
}
