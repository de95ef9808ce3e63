package main

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/potatoeggy/ece198/pkg/melody"
	"github.com/potatoeggy/ece198/pkg/sample"
)

// noTune is the boot tune option that disables the tune.
const noTune = "(none)"

// showSettingsDialog displays a settings dialog with tabs for all configuration options.
// Submitted changes are saved and take effect when the session restarts.
func showSettingsDialog(state *appState) {
	tabs := container.NewAppTabs(
		createStoreTab(state),
		createInputTab(state),
		createStandardsTab(state),
		createMelodyTab(state),
	)

	content := container.NewBorder(nil, nil, nil, nil, tabs)

	d := dialog.NewCustom("Settings", "Close", content, state.window)
	d.Resize(fyne.NewSize(420, 320))
	d.Show()
}

// saveConfig validates and saves the configuration, then restarts the session.
func saveConfig(state *appState) {
	if err := state.cfg.Validate(); err != nil {
		dialog.ShowError(fmt.Errorf("invalid settings: %w", err), state.window)
		return
	}
	if err := state.cfg.Save(state.configPath); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save config: %w", err), state.window)
		return
	}
	state.restartSession()
}

// createStoreTab creates the sample store configuration tab.
func createStoreTab(state *appState) *container.TabItem {
	capacityEntry := widget.NewEntry()
	capacityEntry.SetText(strconv.Itoa(state.cfg.Store.Capacity))

	policySelect := widget.NewSelect([]string{
		sample.PolicyReject.String(),
		sample.PolicyOverwriteOldest.String(),
	}, nil)
	policySelect.SetSelected(state.cfg.Store.Policy)

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Capacity", Widget: capacityEntry},
			{Text: "When full", Widget: policySelect},
		},
		OnSubmit: func() {
			if c, err := strconv.Atoi(capacityEntry.Text); err == nil && c > 0 {
				state.cfg.Store.Capacity = c
			}
			if policySelect.Selected != "" {
				state.cfg.Store.Policy = policySelect.Selected
			}
			saveConfig(state)
		},
	}

	return container.NewTabItem("Store", form)
}

// createInputTab creates the keypad entry configuration tab.
func createInputTab(state *appState) *container.TabItem {
	maxWidthEntry := widget.NewEntry()
	maxWidthEntry.SetText(strconv.Itoa(state.cfg.Input.MaxWidth))

	debounceEntry := widget.NewEntry()
	debounceEntry.SetText(state.cfg.Input.Debounce.String())

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Max Width", Widget: maxWidthEntry},
			{Text: "Debounce", Widget: debounceEntry},
		},
		OnSubmit: func() {
			if w, err := strconv.Atoi(maxWidthEntry.Text); err == nil && w > 0 {
				state.cfg.Input.MaxWidth = w
			}
			if d, err := time.ParseDuration(debounceEntry.Text); err == nil {
				state.cfg.Input.Debounce = d
			}
			saveConfig(state)
		},
	}

	return container.NewTabItem("Input", form)
}

// createStandardsTab creates the reference standards tab.
func createStandardsTab(state *appState) *container.TabItem {
	phEntry := widget.NewEntry()
	phEntry.SetText(fmt.Sprintf("%.2f", state.cfg.Standards.PH))

	condEntry := widget.NewEntry()
	condEntry.SetText(fmt.Sprintf("%.1f", state.cfg.Standards.Conductivity))

	hardnessEntry := widget.NewEntry()
	hardnessEntry.SetText(fmt.Sprintf("%.1f", state.cfg.Standards.Hardness))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "pH", Widget: phEntry},
			{Text: "Conductivity (mS/cm)", Widget: condEntry},
			{Text: "Hardness (mg/L)", Widget: hardnessEntry},
		},
		OnSubmit: func() {
			if v, err := strconv.ParseFloat(phEntry.Text, 64); err == nil {
				state.cfg.Standards.PH = v
			}
			if v, err := strconv.ParseFloat(condEntry.Text, 64); err == nil {
				state.cfg.Standards.Conductivity = v
			}
			if v, err := strconv.ParseFloat(hardnessEntry.Text, 64); err == nil {
				state.cfg.Standards.Hardness = v
			}
			saveConfig(state)
		},
	}

	return container.NewTabItem("Standards", form)
}

// createMelodyTab creates the buzzer configuration tab.
func createMelodyTab(state *appState) *container.TabItem {
	tuneSelect := widget.NewSelect(append([]string{noTune}, melody.Names()...), nil)
	if state.cfg.Melody.BootTune == "" {
		tuneSelect.SetSelected(noTune)
	} else {
		tuneSelect.SetSelected(state.cfg.Melody.BootTune)
	}

	tempoEntry := widget.NewEntry()
	tempoEntry.SetText(state.cfg.Melody.Tempo.String())

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Boot Tune", Widget: tuneSelect},
			{Text: "Beat", Widget: tempoEntry},
		},
		OnSubmit: func() {
			switch tuneSelect.Selected {
			case "", noTune:
				state.cfg.Melody.BootTune = ""
			default:
				state.cfg.Melody.BootTune = tuneSelect.Selected
			}
			if d, err := time.ParseDuration(tempoEntry.Text); err == nil && d > 0 {
				state.cfg.Melody.Tempo = d
			}
			saveConfig(state)
		},
	}

	return container.NewTabItem("Melody", form)
}
