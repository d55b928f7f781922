package replay

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/ports"
)

// Replay dispatches journal entries in order. It stops at the first
// transition fault, wrapping it with the failing sequence number; entries
// already applied stay applied, matching how the original run would have
// behaved.
func Replay(d ports.Dispatcher, entries []Entry) error {
	for _, e := range entries {
		if _, err := d.Dispatch(e.Action); err != nil {
			return fmt.Errorf("replay stopped at entry %d (%s): %w", e.Seq, e.Action.Type, err)
		}
	}
	return nil
}
