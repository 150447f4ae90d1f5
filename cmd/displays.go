package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/cursormon/internal/display"
	"github.com/Norgate-AV/cursormon/internal/interfaces"
)

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List the active displays and mark the one holding the cursor",
	Args:  cobra.NoArgs,
	RunE:  runDisplays,
}

// desktopView is the part of the desktop the displays command reads
type desktopView interface {
	interfaces.DisplayReader
	interfaces.CursorController
}

func runDisplays(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	defer log.Close()
	defer recoverPanic(log)

	desktop, err := newDesktop(log, cfg)
	if err != nil {
		return err
	}

	return writeDisplays(cmd.OutOrStdout(), desktop)
}

// writeDisplays prints one row per display in enumeration order
func writeDisplays(w io.Writer, desktop desktopView) error {
	displays, err := desktop.Displays()
	if err != nil {
		return fmt.Errorf("failed to list displays: %w", err)
	}

	current := -1
	if cursor, ok := desktop.CursorPos(); ok {
		if d, found := display.Locate(cursor, displays); found {
			current = d.ID
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBOUNDS\tSIZE\tCENTER\tCURSOR")

	for _, d := range displays {
		mark := ""
		if d.ID == current {
			mark = "*"
		}

		fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%s\t%s\n",
			d.ID, d.Bounds, d.Bounds.Width(), d.Bounds.Height(), display.Center(d), mark)
	}

	return tw.Flush()
}
