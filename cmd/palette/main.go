// Command palette derives a color scheme from a single seed color and
// renders it as true-color swatches in the terminal, or as a PNG sheet
// when -output is given.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	csscolors "github.com/nyxkrage/css-colors"
)

func main() {
	var (
		seed   = flag.String("seed", "#d9534f", "seed color in #rrggbb form")
		output = flag.String("output", "", "write a PNG sheet to this file instead of using the terminal")
	)
	flag.Parse()

	var base csscolors.RGB
	if err := base.UnmarshalText([]byte(*seed)); err != nil {
		log.Fatalf("Bad seed color: %v", err)
	}

	rows := buildPalette(base)

	if *output != "" {
		if err := writePNG(*output, rows); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Palette saved to %s\n", *output)
		return
	}

	if err := runTerminal(rows); err != nil {
		log.Fatalf("Terminal error: %v", err)
	}
}

type paletteRow struct {
	name   string
	colors []csscolors.RGB
}

func buildPalette(base csscolors.RGB) []paletteRow {
	var tints, shades, hues, muted []csscolors.RGB
	for _, p := range []int{90, 75, 60, 45, 30} {
		tints = append(tints, base.Tint(csscolors.Percent(p)))
		shades = append(shades, base.Shade(csscolors.Percent(p)))
	}
	for d := -60; d <= 60; d += 30 {
		hues = append(hues, base.Spin(csscolors.Deg(d)))
	}
	for _, p := range []int{0, 20, 40, 60, 80} {
		muted = append(muted, base.Desaturate(csscolors.Percent(p)))
	}
	grey := base.Greyscale()
	greys := []csscolors.RGB{
		grey.Lighten(csscolors.Percent(30)),
		grey.Lighten(csscolors.Percent(15)),
		grey,
		grey.Darken(csscolors.Percent(15)),
		grey.Darken(csscolors.Percent(30)),
	}

	return []paletteRow{
		{"tints", tints},
		{"shades", shades},
		{"hues", hues},
		{"muted", muted},
		{"greys", greys},
	}
}

func runTerminal(rows []paletteRow) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	draw := func() {
		s.Clear()
		y := 1
		for _, row := range rows {
			printText(s, 2, y+1, row.name, tcell.StyleDefault)
			x := 12
			for _, c := range row.colors {
				style := tcell.StyleDefault.Background(tcell.NewRGBColor(
					int32(c.R), int32(c.G), int32(c.B)))
				for dy := 0; dy < 2; dy++ {
					for dx := 0; dx < 9; dx++ {
						s.SetContent(x+dx, y+dy, ' ', nil, style)
					}
				}
				printText(s, x+1, y+2, c.Hex(), tcell.StyleDefault)
				x += 10
			}
			y += 4
		}
		printText(s, 2, y, "press q to quit", tcell.StyleDefault.Dim(true))
		s.Show()
	}
	draw()

	for {
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

func printText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func writePNG(path string, rows []paletteRow) error {
	const cellW, cellH = 96, 64

	cols := 0
	for _, row := range rows {
		if len(row.colors) > cols {
			cols = len(row.colors)
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*cellW, len(rows)*cellH))
	for ry, row := range rows {
		for cx, c := range row.colors {
			for y := ry * cellH; y < (ry+1)*cellH; y++ {
				for x := cx * cellW; x < (cx+1)*cellW; x++ {
					img.Set(x, y, c)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
