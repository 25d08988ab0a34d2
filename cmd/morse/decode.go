package morse

import (
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/morse/codec"
	"github.com/spf13/cobra"
)

type DecodeParams struct {
	File string `pos:"true" optional:"true" help:"File to decode. If none provided, reads from stdin."`
	Copy bool   `short:"c" help:"Also copy the decoded output to the clipboard."`
}

func DecodeCmd() *cobra.Command {
	return boa.CmdT[DecodeParams]{
		Use:   "decode",
		Short: "Decode Morse code to text",
		Long: `Decode each line of FILE (or standard input) from Morse code.

Both ASCII (. and ---) and Unicode (● and ▆▆▆) glyphs are accepted.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *DecodeParams, cmd *cobra.Command, args []string) {
			common.SetupLoggingFromFlags(cmd)
			os.Exit(RunDecode(params, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func RunDecode(params *DecodeParams, stdin io.Reader, stdout, stderr io.Writer) int {
	return convertLines("decode", params.File, params.Copy, stdin, stdout, stderr, codec.Decode)
}
