package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/cursormon/internal/engine"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Move the cursor and focus to the next display once, then exit",
	Args:  cobra.NoArgs,
	RunE:  runNext,
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	defer log.Close()
	defer recoverPanic(log)

	eng, err := newEngine(cfg, log)
	if err != nil {
		return err
	}

	writeOutcome(cmd.OutOrStdout(), eng.Trigger())
	return nil
}

// writeOutcome prints a one-line summary of a trigger
func writeOutcome(w io.Writer, out engine.Outcome) {
	if out.Aborted != nil {
		fmt.Fprintf(w, "skipped: %v\n", out.Aborted)
		return
	}

	moved := "cursor left in place"
	if out.Moved {
		moved = "cursor moved to " + out.Point.String()
	}

	focus := "focus unchanged"
	switch {
	case out.Transferred:
		focus = fmt.Sprintf("focused window 0x%X", out.Target)
	case out.Resolved:
		focus = fmt.Sprintf("could not focus window 0x%X", out.Target)
	}

	fmt.Fprintf(w, "display %d -> %d: %s, %s\n", out.Origin.ID, out.Destination.ID, moved, focus)
}
