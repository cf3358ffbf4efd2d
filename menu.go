package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// pauseMenu is a small ebitenui overlay shown while the game is paused.
type pauseMenu struct {
	ui *ebitenui.UI
}

func newPauseMenu(face font.Face, onResume, onQuit func()) *pauseMenu {
	buttonImage := &widget.ButtonImage{
		Idle:    euiimage.NewNineSliceColor(color.NRGBA{40, 40, 40, 230}),
		Hover:   euiimage.NewNineSliceColor(color.NRGBA{70, 70, 70, 230}),
		Pressed: euiimage.NewNineSliceColor(color.NRGBA{25, 25, 25, 230}),
	}
	textColor := &widget.ButtonTextColor{Idle: color.NRGBA{230, 230, 230, 255}}
	textPadding := widget.Insets{Top: 6, Bottom: 6, Left: 24, Right: 24}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(color.NRGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.Insets{Top: 24, Bottom: 24, Left: 32, Right: 32}),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Resume", face, textColor),
		widget.ButtonOpts.TextPadding(textPadding),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onResume() }),
	))
	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Quit", face, textColor),
		widget.ButtonOpts.TextPadding(textPadding),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onQuit() }),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &pauseMenu{ui: &ebitenui.UI{Container: root}}
}

func (m *pauseMenu) update() {
	m.ui.Update()
}

func (m *pauseMenu) draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}
