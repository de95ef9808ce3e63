package main

import (
	"errors"
	"flag"
	"io"
	"sync"

	"github.com/kardianos/service"
	"github.com/potatoeggy/ece198/pkg/config"
	"github.com/potatoeggy/ece198/pkg/device"
	"github.com/potatoeggy/ece198/pkg/log"
	"github.com/potatoeggy/ece198/pkg/session"
)

type app struct {
	cfg *config.Config

	mu      sync.Mutex
	console *device.Console
	logFile io.Closer
	done    chan struct{}
}

func (p *app) Start(s service.Service) error {
	p.done = make(chan struct{})
	go p.run()
	return nil
}

func (p *app) run() {
	defer close(p.done)

	p.logFile = log.Setup(p.cfg.Log.File, !service.Interactive())

	console := device.NewConsole(p.cfg.Serial.Port, p.cfg.Serial.BaudRate, p.cfg.Serial.ReadTimeout, p.cfg.Display.Width)
	if err := console.Connect(); err != nil {
		log.Fatalf("Failed to open serial console on %s: %v", p.cfg.Serial.Port, err)
	}
	p.mu.Lock()
	p.console = console
	p.mu.Unlock()
	log.Printf("Kiosk running on %s at %d baud", p.cfg.Serial.Port, p.cfg.Serial.BaudRate)

	ctrl, err := session.New(device.Peripherals{
		Keypad:  console,
		Display: console,
		Sleeper: device.SystemSleeper{},
		Buzzer:  console,
	}, p.cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	if err := ctrl.Run(); err != nil && !errors.Is(err, device.ErrNotConnected) {
		log.Printf("Session stopped: %v", err)
	}
}

func (p *app) Stop(s service.Service) error {
	p.mu.Lock()
	console := p.console
	p.mu.Unlock()

	if console != nil {
		if err := console.Close(); err != nil {
			log.Printf("Failed to close serial console: %v", err)
		}
	}
	if p.done != nil {
		<-p.done
	}
	log.Println("Kiosk stopped")
	if p.logFile != nil {
		return p.logFile.Close()
	}
	return nil
}

func main() {
	var (
		svcFlag    = flag.String("service", "", "Control the system service (install, uninstall, start, stop, restart)")
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		portFlag   = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
		listFlag   = flag.Bool("list", false, "List serial ports and exit")
	)
	flag.Parse()

	if *listFlag {
		ports, err := device.Ports()
		if err != nil {
			log.Fatalf("Failed to list serial ports: %v", err)
		}
		for _, port := range ports {
			log.Println(port)
		}
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	svcConfig := &service.Config{
		Name:        "WaterKiosk",
		DisplayName: "Water Quality Kiosk",
		Description: "Serial keypad and display kiosk for water quality advice",
		Arguments:   []string{"-config", *configFlag},
	}

	prg := &app{cfg: cfg}
	s, err := service.New(prg, svcConfig)
	if err != nil {
		log.Fatal(err)
	}

	if *svcFlag != "" {
		if err := service.Control(s, *svcFlag); err != nil {
			log.Printf("Valid actions: %q", service.ControlAction)
			log.Fatal(err)
		}
		return
	}

	// Interactive runs stop on SIGINT or SIGTERM through Stop.
	logger, err := s.Logger(nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Run(); err != nil {
		logger.Error(err)
	}
}
