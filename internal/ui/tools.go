package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MyLocalPaint/internal/board"
)

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
	color.NRGBA{R: 255, G: 165, A: 255}, // Orange
	color.NRGBA{R: 128, B: 128, A: 255}, // Purple
}

// colorSwatch is a tappable square of one color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// newToolSelector lists the tools in toolbar order with the board's current
// tool selected.
func newToolSelector(b *board.Board) *widget.RadioGroup {
	names := make([]string, len(board.Tools))
	for i, t := range board.Tools {
		names[i] = t.String()
	}
	group := widget.NewRadioGroup(names, func(name string) {
		t, err := board.ParseTool(name)
		if err != nil {
			return
		}
		b.SetTool(t)
	})
	group.Horizontal = true
	group.Required = true
	group.SetSelected(b.Tool().String())
	return group
}

func (e *Editor) newToolbar() fyne.CanvasObject {
	current := canvas.NewRectangle(e.board.Color())
	current.SetMinSize(fyne.NewSize(28, 28))

	pick := func(c color.Color) {
		e.board.SetColor(c)
		current.FillColor = e.board.Color()
		current.Refresh()
	}

	colors := container.NewHBox()
	for _, c := range palette {
		colors.Add(newColorSwatch(c, pick))
	}
	colors.Add(widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		picker := dialog.NewColorPicker("Pen color", "Choose a color for new shapes", pick, e.win)
		picker.Advanced = true
		picker.Show()
	}))

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), e.reset),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), e.showSave),
		widget.NewToolbarAction(theme.FolderOpenIcon(), e.showOpen),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), e.showExportPNG),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), e.showExportPDF),
	)

	return container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Tool:"),
			newToolSelector(e.board),
			layout.NewSpacer(),
			actions,
		),
		container.NewHBox(
			widget.NewLabel("Color:"),
			current,
			widget.NewSeparator(),
			colors,
		),
	)
}
