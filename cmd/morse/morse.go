// Package morse implements the encode, decode, play and alphabet commands.
package morse

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/morse/codec"
	"github.com/spf13/cobra"
)

var clipboardWriteAll = clipboard.WriteAll

// Commands returns all subcommands of the morse tool.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		EncodeCmd(),
		DecodeCmd(),
		PlayCmd(),
		AlphabetCmd(),
	}
}

// convertLines runs convert on every line of file (stdin when empty) and prints one
// result or error line per input line. Conversion failures are reported on stdout and
// do not change the exit code, only I/O failures do.
func convertLines(
	name, file string,
	copyOutput bool,
	stdin io.Reader, stdout, stderr io.Writer,
	convert func(line string) (string, error),
) int {
	r, closeInput, err := common.OpenInput(file, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	defer closeInput()

	var copied strings.Builder
	lines, failed := 0, 0
	err = common.ForEachLine(r, func(line string) error {
		lines++
		out, err := convert(line)
		if err != nil {
			failed++
			slog.Debug("line failed", "command", name, "line", lines, "error", err)
			fmt.Fprintln(stdout, common.ErrorText(stdout, describeError(err)))
			return nil
		}
		fmt.Fprintln(stdout, out)
		if copyOutput {
			copied.WriteString(out)
			copied.WriteByte('\n')
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	slog.Debug("done", "command", name, "lines", lines, "failed", failed)

	if copyOutput {
		if err := clipboardWriteAll(copied.String()); err != nil {
			fmt.Fprintf(stderr, "%s: failed to write to clipboard: %v\n", name, err)
			return 1
		}
	}
	return 0
}

// describeError renders a per-line codec failure for the user.
func describeError(err error) string {
	if errors.Is(err, codec.ErrUnsupportedChar) {
		return fmt.Sprintf("cannot encode this line because of not recognized characters (%v)", err)
	}
	return fmt.Sprintf("error: %v", err)
}
