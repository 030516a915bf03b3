package main

import (
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/worldtree/sim"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	mapWidth  = 420
	mapHeight = 240
)

// regionMapImage draws the visited rooms of the current region. The room
// the hero is in is highlighted.
func regionMapImage(s *sim.Sim, pal palette) *ebiten.Image {
	img := ebiten.NewImage(mapWidth, mapHeight)
	layout := s.RegionMap()
	if len(layout) == 0 {
		return img
	}

	world := s.Content().World
	region := s.Room().Region
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for name, pos := range layout {
		w, h, _ := world.RoomSize(region, name)
		minX, minY = min(minX, pos.X), min(minY, pos.Y)
		maxX, maxY = max(maxX, pos.X+w), max(maxY, pos.Y+h)
	}
	scale := min(float32(mapWidth-8)/float32(maxX-minX), float32(mapHeight-8)/float32(maxY-minY))

	for name, pos := range layout {
		if !s.Visited(region, name) {
			continue
		}
		w, h, _ := world.RoomSize(region, name)
		clr := pal.solid
		if name == s.Room().Name {
			clr = pal.hero
		}
		x := 4 + float32(pos.X-minX)*scale
		y := 4 + float32(pos.Y-minY)*scale
		vector.FillRect(img, x, y, float32(w)*scale, float32(h)*scale, clr, false)
		vector.StrokeRect(img, x, y, float32(w)*scale, float32(h)*scale, 1, colornames.Black, false)
	}
	return img
}

// NewPauseUI builds the pause panel: region map, Resume, Save and Quit.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	regionName := ""
	if reg, ok := g.sim.Content().World.Regions[g.sim.Room().Region]; ok {
		regionName = reg.Name
	}
	title := widget.NewText(
		widget.TextOpts.Text("Paused - "+regionName, &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	regionMap := widget.NewGraphic(
		widget.GraphicOpts.Image(regionMapImage(g.sim, g.render.pal)),
		widget.GraphicOpts.WidgetOpts(center),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(g.screenW/2, g.screenH/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(regionMap)
	panel.AddChild(button("Resume", g.togglePause))
	if g.store != nil {
		panel.AddChild(button("Save", g.save))
	}
	panel.AddChild(button("Quit", func() { g.quit = true }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
