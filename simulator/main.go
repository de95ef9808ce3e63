package main

import (
	"errors"
	"flag"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/potatoeggy/ece198/pkg/config"
	"github.com/potatoeggy/ece198/pkg/device"
	"github.com/potatoeggy/ece198/pkg/lcd"
	"github.com/potatoeggy/ece198/pkg/session"
)

func main() {
	var (
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		tuneFlag   = flag.String("tune", "", "Boot tune override (e.g., twinkle, mario)")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *tuneFlag != "" {
		cfg.Melody.BootTune = *tuneFlag
	}

	application := app.NewWithID("com.potatoeggy.ece198")

	window := application.NewWindow("Water Quality Kiosk")
	window.SetFixedSize(true)

	state := &appState{
		cfg:        cfg,
		configPath: *configFlag,
		window:     window,
		lcdWidget:  lcd.New(cfg.Display.Width),
	}
	state.buzzer = newLabelBuzzer()

	content := container.NewBorder(
		createToolbar(state),
		state.buzzer.label,
		nil,
		nil,
		container.NewVBox(state.lcdWidget, createKeypad(state)),
	)
	window.SetContent(content)
	window.Canvas().SetOnTypedRune(func(r rune) {
		state.press(runeKey(r))
	})
	window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyReturn || ev.Name == fyne.KeyEnter {
			state.press(device.KeyHash)
		}
	})
	window.SetOnClosed(state.stopSession)

	state.startSession()
	window.ShowAndRun()
}

// appState holds the simulator state.
type appState struct {
	cfg        *config.Config
	configPath string
	window     fyne.Window
	lcdWidget  *lcd.LCDWidget
	buzzer     *labelBuzzer

	mu     sync.Mutex
	keypad *device.ChanKeypad
	done   chan struct{} // Closed when the session goroutine exits
}

// createToolbar creates the toolbar with Settings and Restart buttons.
func createToolbar(state *appState) fyne.CanvasObject {
	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		showSettingsDialog(state)
	})
	restartBtn := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		state.restartSession()
	})
	return container.NewHBox(settingsBtn, restartBtn)
}

// startSession runs a fresh session with an empty sample store.
func (s *appState) startSession() {
	keypad := device.NewChanKeypad(16, device.DefaultScanTimeout)

	ctrl, err := session.New(device.Peripherals{
		Keypad:  keypad,
		Display: s.lcdWidget,
		Sleeper: device.SystemSleeper{},
		Buzzer:  s.buzzer,
	}, s.cfg)
	if err != nil {
		dialog.ShowError(err, s.window)
		return
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.keypad = keypad
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		if err := ctrl.Run(); err != nil && !errors.Is(err, device.ErrKeypadClosed) {
			log.Printf("Session stopped: %v", err)
		}
	}()
	log.Printf("Session started (store capacity %d, policy %s)", s.cfg.Store.Capacity, s.cfg.Store.Policy)
}

// stopSession closes the keypad and waits for the session goroutine to exit.
func (s *appState) stopSession() {
	s.mu.Lock()
	keypad, done := s.keypad, s.done
	s.keypad, s.done = nil, nil
	s.mu.Unlock()

	if keypad == nil {
		return
	}
	keypad.Close()
	<-done
}

// restartSession stops the running session and starts a new one.
// The session is stopped off the UI thread since it may be drawing.
func (s *appState) restartSession() {
	go func() {
		s.stopSession()
		fyne.Do(s.startSession)
	}()
}

// press forwards a key to the running session.
func (s *appState) press(k device.Key) {
	if k == device.KeyNone {
		return
	}
	s.mu.Lock()
	keypad := s.keypad
	s.mu.Unlock()

	if keypad != nil && !keypad.Press(k) {
		log.Printf("Dropped key %s, keypad buffer full", k)
	}
}
