package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/lothartj/desksort/internal/config"
	"github.com/lothartj/desksort/internal/model"
)

// SettingsDialog represents the destination configuration dialog: one row
// per category with a destination path entry and a folder picker.
type SettingsDialog struct {
	window fyne.Window
	store  *config.Store
	dialog *dialog.ConfirmDialog

	entries map[model.CategoryID]*widget.Entry
	onSaved func(model.Mapping)
}

// NewSettingsDialog creates a new settings dialog pre-filled with the
// current mapping. onSaved is called after a successful persist.
func NewSettingsDialog(window fyne.Window, store *config.Store, current model.Mapping, onSaved func(model.Mapping)) *SettingsDialog {
	sd := &SettingsDialog{
		window:  window,
		store:   store,
		entries: make(map[model.CategoryID]*widget.Entry, len(model.Table)),
		onSaved: onSaved,
	}

	sd.createUI(current)
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI(current model.Mapping) {
	form := container.NewVBox(
		widget.NewLabel("Destination folder per category"),
		widget.NewSeparator(),
	)

	for _, category := range model.Table {
		entry := widget.NewEntry()
		entry.SetPlaceHolder("No destination (entries are skipped)")
		if dir, exists := current[category.ID]; exists {
			entry.SetText(dir)
		}
		sd.entries[category.ID] = entry

		browseBtn := widget.NewButton(IconFolder, sd.makeBrowseHandler(entry))
		row := container.NewBorder(nil, nil, nil, browseBtn, entry)

		form.Add(widget.NewLabel(category.Label + ":"))
		form.Add(row)
	}

	scroll := container.NewVScroll(form)
	scroll.SetMinSize(fyne.NewSize(SettingsDialogWidth-40, SettingsDialogHeight-80))

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		scroll,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// makeBrowseHandler returns a folder picker callback bound to one entry.
func (sd *SettingsDialog) makeBrowseHandler(entry *widget.Entry) func() {
	return func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			entry.SetText(uri.Path())
		}, sd.window)
	}
}

// onSave persists the whole mapping, replacing the prior document. Empty
// entries mean the category has no destination and its files stay put.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	mapping := make(model.Mapping)
	for id, entry := range sd.entries {
		if dir := strings.TrimSpace(entry.Text); dir != "" {
			mapping[id] = dir
		}
	}

	if err := sd.store.Save(mapping); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved(mapping)
	}

	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
