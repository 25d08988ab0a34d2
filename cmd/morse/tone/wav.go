package tone

import (
	"fmt"
	"io"

	"github.com/gopxl/beep/v2/wav"
)

// WriteWAV drains the generator into w as 16-bit mono PCM.
func WriteWAV(w io.WriteSeeker, g *Generator) error {
	if err := wav.Encode(w, g, g.Format()); err != nil {
		return fmt.Errorf("failed to encode wav: %w", err)
	}
	return nil
}
