package main

import (
	"os"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/morse"
)

func main() {
	root := boa.CmdT[boa.NoParams]{
		Use:     "morse",
		Short:   "Convert text to and from Morse code",
		Version: appVersion(),
		SubCmds: morse.Commands(),
	}.ToCobra()
	root.PersistentFlags().BoolP("verbose", "V", false, "Log debug information to stderr.")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
