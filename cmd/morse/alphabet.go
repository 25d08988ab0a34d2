package morse

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/morse/codec"
	"github.com/gigurra/morse/cmd/morse/tone"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type AlphabetParams struct {
	Encoding string `short:"e" help:"Glyphs to show (ascii, unicode)." default:"ascii" alts:"ascii,unicode,a,u"`
}

func AlphabetCmd() *cobra.Command {
	return boa.CmdT[AlphabetParams]{
		Use:         "alphabet",
		Short:       "Show the supported characters and their Morse codes",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *AlphabetParams, cmd *cobra.Command, args []string) {
			common.SetupLoggingFromFlags(cmd)
			os.Exit(RunAlphabet(params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func RunAlphabet(params *AlphabetParams, stdout, stderr io.Writer) int {
	enc, err := codec.ParseEncoding(params.Encoding)
	if err != nil {
		fmt.Fprintf(stderr, "alphabet: %v\n", err)
		return 1
	}

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Char", "Code", "Morse", "Units"})
	t.AppendRows(lo.Map(codec.Alphabet(), func(e codec.Entry, _ int) table.Row {
		return table.Row{string(e.Char), e.Letter.String(), glyphs(e, enc), strconv.Itoa(letterUnits(e))}
	}))
	t.Render()
	return 0
}

func glyphs(e codec.Entry, enc codec.Encoding) string {
	sink := codec.NewTextSink(enc)
	mustEncode(sink, e)
	return sink.String()
}

// letterUnits is the length of the letter in elementary units, gaps included.
func letterUnits(e codec.Entry) int {
	g := tone.New(tone.DefaultFrequency, 1)
	mustEncode(g, e)
	return g.Units()
}

// mustEncode panics when an alphabet entry cannot be encoded, as the table is broken.
func mustEncode(sink codec.Sink, e codec.Entry) {
	if err := codec.Encode(sink, string(e.Char)); err != nil {
		panic(fmt.Sprintf("alphabet entry %q: %v", e.Char, err))
	}
}
