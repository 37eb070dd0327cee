package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spatialbits/geom3d"
	"github.com/spf13/cobra"
)

const (
	screenWidth  = 640
	screenHeight = 480

	nearPlaneZ       = 25
	conversionFactor = 700
	viewDistance     = 400.0
	fitRadius        = 140.0
	spinPerTick      = 0.01
)

var viewCmd = &cobra.Command{
	Use:   "view <catalog.yaml>",
	Short: "Draw the catalog's bounded shapes as a spinning wireframe",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	reg, err := geom3d.LoadCatalogFile(args[0])
	if err != nil {
		return err
	}

	var edges []geom3d.Segment
	reg.Each(func(name string, s geom3d.Dimensional) {
		// Only bounded shapes know their outline; planes and other
		// non-Wireframe implementers are simply not drawn.
		if wf, ok := s.(geom3d.Wireframe); ok {
			edges = append(edges, wf.Edges()...)
		}
	})
	if len(edges) == 0 {
		return fmt.Errorf("catalog has no drawable shapes")
	}

	g := &viewer{edges: fitEdges(edges)}

	log.Printf("viewing %d edges from %s", len(g.edges), args[0])
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("shapeview")
	return ebiten.RunGame(g)
}

type viewer struct {
	edges []geom3d.Segment
	angle float64
}

func (g *viewer) Update() error {
	g.angle += spinPerTick
	return nil
}

func (g *viewer) Draw(screen *ebiten.Image) {
	rot := mgl64.Rotate3DY(g.angle)
	for _, e := range g.edges {
		a := rot.Mul3x1(e.A.Vec())
		b := rot.Mul3x1(e.B.Vec())
		az := a.Z() + viewDistance
		bz := b.Z() + viewDistance
		if az < nearPlaneZ || bz < nearPlaneZ {
			continue
		}
		drawLine(screen,
			projectX(a.X(), az), projectY(a.Y(), az),
			projectX(b.X(), bz), projectY(b.Y(), bz),
			color.RGBA{R: 0, G: 255, B: 0, A: 255})
	}
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func projectX(x, z float64) float32 {
	return float32(conversionFactor*x/z) + screenWidth/2
}

func projectY(y, z float64) float32 {
	return float32(conversionFactor*y/z) + screenHeight/2
}

func drawLine(screen *ebiten.Image, startX, startY, endX, endY float32, col color.Color) {
	vector.StrokeLine(screen, startX, startY, endX, endY, 1, col, false)
}

// fitEdges recenters the edge cloud on the origin and scales it so the
// farthest point sits at fitRadius, keeping any catalog visible at the
// fixed camera distance.
func fitEdges(edges []geom3d.Segment) []geom3d.Segment {
	var sum mgl64.Vec3
	for _, e := range edges {
		sum = sum.Add(e.A.Vec()).Add(e.B.Vec())
	}
	center := sum.Mul(1 / float64(2*len(edges)))

	maxDist := 0.0
	for _, e := range edges {
		for _, v := range []mgl64.Vec3{e.A.Vec(), e.B.Vec()} {
			if d := v.Sub(center).Len(); d > maxDist {
				maxDist = d
			}
		}
	}
	scale := 1.0
	if maxDist > 0 {
		scale = fitRadius / maxDist
	}

	fit := func(p geom3d.Point) geom3d.Point {
		v := p.Vec().Sub(center).Mul(scale)
		return geom3d.NewPoint(v.X(), v.Y(), v.Z())
	}
	out := make([]geom3d.Segment, len(edges))
	for i, e := range edges {
		out[i] = geom3d.NewSegment(fit(e.A), fit(e.B))
	}
	return out
}
