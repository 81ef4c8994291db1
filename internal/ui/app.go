package ui

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"aboard/internal/export"
	"aboard/internal/state"
	"aboard/internal/store"
)

// RunApp opens the main window and blocks until it closes.
func RunApp(boards *store.Store, width, height int) {
	myApp := app.New()
	win := myApp.NewWindow("aboard")
	win.Resize(fyne.NewSize(float32(width), float32(height)))

	doc := state.NewDocument()
	pal := state.NewPalette()
	board := NewBoardWidget(doc, pal)
	status := widget.NewLabel("Ready")

	setStatus := func(format string, args ...any) {
		status.SetText(fmt.Sprintf(format, args...))
	}

	// Text-input collaborator: the machine hands us world coordinates,
	// we collect a string and commit it on confirmation only.
	board.Machine().OnTextInput = func(wx, wy float64) {
		entry := widget.NewEntry()
		dialog.ShowForm("Add Text", "Add", "Cancel",
			[]*widget.FormItem{widget.NewFormItem("Text", entry)},
			func(ok bool) {
				if !ok {
					return
				}
				doc.AddText(entry.Text, wx, wy, pal.Brush)
				board.Refresh()
			}, win)
	}

	onDarkMode := func(on bool) {
		pal.SetDarkMode(on)
		doc.RecolorEraserStrokes(pal.Background)
		board.Refresh()
	}

	toolbar := NewToolbar(board, pal, onDarkMode)

	var boardID string

	saveBoard := func() {
		id, err := boards.Save(boardID, doc, pal)
		if err != nil {
			log.Printf("save failed: %v", err)
			dialog.ShowError(err, win)
			return
		}
		boardID = id
		setStatus("Saved board %s", id)
	}

	openBoard := func(id string) {
		loadedDoc, loadedPal, err := boards.Load(id)
		if err != nil {
			log.Printf("open failed: %v", err)
			dialog.ShowError(err, win)
			return
		}
		*doc = *loadedDoc
		*pal = *loadedPal
		boardID = id
		board.Refresh()
		setStatus("Opened board %s", id)
	}

	browseBoards := func() {
		ids, err := boards.List()
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if len(ids) == 0 {
			dialog.ShowInformation("Boards", "No saved boards yet.", win)
			return
		}

		selected := -1
		list := widget.NewList(
			func() int { return len(ids) },
			func() fyne.CanvasObject { return widget.NewLabel("") },
			func(i widget.ListItemID, o fyne.CanvasObject) {
				o.(*widget.Label).SetText(ids[i])
			},
		)
		list.OnSelected = func(i widget.ListItemID) { selected = i }

		content := container.NewStack(list)
		d := dialog.NewCustomConfirm("Boards", "Open", "Cancel", content, func(ok bool) {
			if !ok || selected < 0 {
				return
			}
			openBoard(ids[selected])
		}, win)
		d.Resize(fyne.NewSize(400, 300))
		d.Show()
	}

	deleteBoard := func() {
		ids, err := boards.List()
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if len(ids) == 0 {
			dialog.ShowInformation("Boards", "No saved boards yet.", win)
			return
		}
		picker := widget.NewSelect(ids, nil)
		dialog.ShowForm("Delete Board", "Delete", "Cancel",
			[]*widget.FormItem{widget.NewFormItem("Board", picker)},
			func(ok bool) {
				if !ok || picker.Selected == "" {
					return
				}
				if err := boards.Delete(picker.Selected); err != nil {
					dialog.ShowError(err, win)
					return
				}
				if picker.Selected == boardID {
					boardID = ""
				}
				setStatus("Deleted board %s", picker.Selected)
			}, win)
	}

	exportPDF := func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := export.PDF(path, doc); err != nil {
				log.Printf("export failed: %v", err)
				dialog.ShowError(err, win)
				return
			}
			setStatus("Exported %s", path)
		}, win)
		d.SetFileName("board.pdf")
		d.Show()
	}

	newBoard := func() {
		*doc = *state.NewDocument()
		*pal = *state.NewPalette()
		boardID = ""
		board.Refresh()
		setStatus("New board")
	}

	win.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Board",
			fyne.NewMenuItem("New", newBoard),
			fyne.NewMenuItem("Open...", browseBoards),
			fyne.NewMenuItem("Save", saveBoard),
			fyne.NewMenuItem("Delete...", deleteBoard),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Export PDF...", exportPDF),
		),
	))

	// Image-source collaborator: dropped image files land at the drop
	// point. A failed decode leaves the document untouched.
	win.SetOnDropped(func(pos fyne.Position, uris []fyne.URI) {
		rel := fyne.NewPos(pos.X-board.Position().X, pos.Y-board.Position().Y)
		world := doc.View.ScreenToWorld(eventPoint(rel))
		for _, uri := range uris {
			img, err := decodeImageFile(uri.Path())
			if err != nil {
				log.Printf("image drop: %v", err)
				setStatus("Could not read image %s", uri.Name())
				continue
			}
			doc.AddImage(img, world.X, world.Y)
			setStatus("Placed image %s", uri.Name())
		}
		board.Refresh()
	})

	content := container.NewBorder(toolbar, status, nil, nil, board)
	win.SetContent(content)
	win.ShowAndRun()
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
