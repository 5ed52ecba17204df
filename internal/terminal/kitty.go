// Package terminal writes images to Kitty-protocol capable terminals.
package terminal

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BourgeoisBear/rasterm"
)

// KittyInline generates the Kitty graphics protocol string for the given
// PNG image bytes. With targetRows > 0 the image is scaled to that many
// terminal rows; 0 lets the terminal pick a size.
func KittyInline(img []byte, targetRows int) (string, error) {
	var sb strings.Builder
	opts := rasterm.KittyImgOpts{}

	if targetRows > 0 {
		opts.DstRows = uint32(targetRows)
	}

	if err := rasterm.KittyCopyPNGInline(&sb, bytes.NewReader(img), opts); err != nil {
		return "", fmt.Errorf("rasterm.KittyCopyPNGInline failed: %v", err)
	}

	kittyStr := strings.TrimRight(sb.String(), "\n") + "\n"
	kittyStr = strings.ReplaceAll(kittyStr, "\x00", "")

	return kittyStr, nil
}
