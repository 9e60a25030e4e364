package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// AreaEntry is one button of the picker.
type AreaEntry struct {
	ID   int
	Name string
}

// Label is the button text for an area.
func (a AreaEntry) Label() string {
	if a.Name == "" {
		return fmt.Sprintf("%2d", a.ID)
	}
	return fmt.Sprintf("%2d  %s", a.ID, a.Name)
}

// AreaPickerUI is the side panel listing every area of the installation.
type AreaPickerUI struct {
	UI *ebitenui.UI

	OnSelect func(areaID int)

	currentLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewAreaPickerUI(areas []AreaEntry, width int, onSelect func(areaID int)) *AreaPickerUI {
	ui := &AreaPickerUI{
		OnSelect: onSelect,
	}
	ui.loadFonts()
	ui.buildUI(areas, width)
	return ui
}

func (ui *AreaPickerUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *AreaPickerUI) buildUI(areas []AreaEntry, width int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("AREAS", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	for _, area := range areas {
		panel.AddChild(ui.buildAreaButton(area))
	}

	ui.currentLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.currentLabel)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *AreaPickerUI) buildAreaButton(area AreaEntry) *widget.Button {
	areaID := area.ID
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, 22),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(area.Label(), &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSelect != nil {
				ui.OnSelect(areaID)
			}
		}),
	)
}

// SetCurrent shows which area the camera was last sent to.
func (ui *AreaPickerUI) SetCurrent(label string) {
	if ui.currentLabel != nil {
		ui.currentLabel.Label = label
	}
}

func (ui *AreaPickerUI) Update() {
	ui.UI.Update()
}

func (ui *AreaPickerUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
