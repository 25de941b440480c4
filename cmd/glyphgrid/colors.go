package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/glyphgrid/internal/palette"
)

// parseColors reads palette colours given by name ("base blue", "gelb") or
// by 1-based number, keeping the given order.
func parseColors(pal palette.Palette, args []string) (palette.Selection, error) {
	var sel palette.Selection
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		i, err := colorIndex(pal, arg)
		if err != nil {
			return palette.Selection{}, err
		}
		if !sel.Add(i) {
			return palette.Selection{}, fmt.Errorf("colour %q given twice", arg)
		}
	}
	if !sel.Ready() {
		return palette.Selection{}, fmt.Errorf("select at least %d colours", palette.MinSelection)
	}
	return sel, nil
}

func colorIndex(pal palette.Palette, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(pal) {
			return 0, fmt.Errorf("colour number %d out of range 1..%d", n, len(pal))
		}
		return n - 1, nil
	}
	for i, entry := range pal {
		if strings.EqualFold(entry.Name, arg) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown colour %q", arg)
}
