// Command heapviz renders a page/space occupancy map for a gc.Heap as a
// PNG. It is a diagnostic tool only: it drives a small heap through a
// representative workload and a single collection cycle, then rasterizes
// the resulting page snapshot. It is not part of the collector itself —
// spec.md excludes CLI/demo drivers from the core, so everything here
// goes through gc's public API (New/StackBase/Allocate/StorePointer/
// Collect/Snapshot) exactly
// as an external client would.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/fogleman/gg"

	"github.com/iansmith/mazgc/bitfield"
	"github.com/iansmith/mazgc/gc"
)

func main() {
	heapBytes := flag.Int("heap", 64*gc.PageSize, "heap size in bytes")
	objects := flag.Int("objects", 64, "number of list nodes to allocate before collecting")
	out := flag.String("out", "heap.png", "output PNG path")
	cell := flag.Int("cell", 18, "pixel size of one page's cell")
	cols := flag.Int("cols", 16, "page grid width, in cells")
	font := flag.String("font", "", "optional TrueType font file for space-number labels")
	flag.Parse()

	var root gc.Addr
	h := gc.New(*heapBytes, gc.StackBase(), &root)

	for i := 0; i < *objects; i++ {
		node := h.Allocate(2*8, 1)
		h.StorePointer(node, 0, root)
		root = node
	}
	h.Collect()

	snap := h.Snapshot()
	if err := render(snap, *cols, *cell, *font, *out); err != nil {
		log.Fatalf("heapviz: %v", err)
	}
	fmt.Printf("heapviz: wrote %s (%d pages)\n", *out, len(snap))
}

func render(snap []gc.PageSnapshot, cols, cellPx int, fontPath, out string) error {
	if cols <= 0 {
		cols = 16
	}
	rows := (len(snap) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}

	dc := gg.NewContext(cols*cellPx, rows*cellPx)
	dc.SetColor(color.White)
	dc.Clear()

	haveFont := false
	if fontPath != "" {
		if err := dc.LoadFontFace(fontPath, float64(cellPx)/2.2); err == nil {
			haveFont = true
		}
	}

	for i, p := range snap {
		x := float64((i % cols) * cellPx)
		y := float64((i / cols) * cellPx)

		dc.SetColor(classColor(p.Kind))
		dc.DrawRectangle(x, y, float64(cellPx), float64(cellPx))
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawRectangle(x, y, float64(cellPx), float64(cellPx))
		dc.SetLineWidth(1)
		dc.Stroke()

		if haveFont && p.Kind != bitfield.KindFree {
			dc.DrawStringAnchored(fmt.Sprintf("%d", p.Space), x+float64(cellPx)/2, y+float64(cellPx)/2, 0.5, 0.5)
		}
	}

	return dc.SavePNG(out)
}

func classColor(k bitfield.Kind) color.Color {
	switch k {
	case bitfield.KindObject:
		return color.RGBA{R: 0x2b, G: 0x6c, B: 0xb0, A: 0xff}
	case bitfield.KindContinued:
		return color.RGBA{R: 0x9e, G: 0xc5, B: 0xe8, A: 0xff}
	default:
		return color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	}
}
