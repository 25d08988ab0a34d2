package morse

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/morse/codec"
	"github.com/spf13/cobra"
)

type EncodeParams struct {
	File     string `pos:"true" optional:"true" help:"File to encode. If none provided, reads from stdin."`
	Encoding string `short:"e" help:"Glyphs to encode with (ascii, unicode)." default:"ascii" alts:"ascii,unicode,a,u"`
	Copy     bool   `short:"c" help:"Also copy the encoded output to the clipboard."`
}

func EncodeCmd() *cobra.Command {
	return boa.CmdT[EncodeParams]{
		Use:   "encode",
		Short: "Encode text as Morse code",
		Long: `Encode each line of FILE (or standard input) as Morse code.

Symbols are separated by one space, letters by three and words by seven.
Only the letters A-Z and the digits 0-9 can be encoded. Lines containing anything
else are reported and skipped.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *EncodeParams, cmd *cobra.Command, args []string) {
			common.SetupLoggingFromFlags(cmd)
			os.Exit(RunEncode(params, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func RunEncode(params *EncodeParams, stdin io.Reader, stdout, stderr io.Writer) int {
	enc, err := codec.ParseEncoding(params.Encoding)
	if err != nil {
		fmt.Fprintf(stderr, "encode: %v\n", err)
		return 1
	}

	sink := codec.NewTextSink(enc)
	return convertLines("encode", params.File, params.Copy, stdin, stdout, stderr, func(line string) (string, error) {
		sink.Reset()
		if err := codec.Encode(sink, line); err != nil {
			return "", err
		}
		return sink.String(), nil
	})
}
