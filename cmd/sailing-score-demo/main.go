package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/ngmaloney/sailing-score/internal/api"
	"github.com/ngmaloney/sailing-score/internal/config"
	"github.com/ngmaloney/sailing-score/internal/models"
	"github.com/ngmaloney/sailing-score/internal/session"
	"github.com/ngmaloney/sailing-score/internal/stub"
	"github.com/ngmaloney/sailing-score/internal/ui"
)

// This demo runs the UI against the built-in fixture backend
func main() {
	location := flag.String("location", "Barcelona", "Search this place on startup")
	serveOnly := flag.Bool("serve", false, "Only run the fixture backend, without the UI")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	closer, err := config.SetupLogging(cfg)
	if err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ln, err := net.Listen("tcp", cfg.StubAddr)
	if err != nil {
		fmt.Printf("Error starting fixture backend: %v\n", err)
		os.Exit(1)
	}

	if *serveOnly {
		app := stub.NewApp(os.Stdout)
		fmt.Printf("Fixture backend listening on http://%s\n", ln.Addr())
		if err := app.Listener(ln); err != nil {
			fmt.Printf("Error running fixture backend: %v\n", err)
			os.Exit(1)
		}
		return
	}

	app := stub.NewApp(log.StandardLog().Writer())
	go func() {
		if err := app.Listener(ln); err != nil {
			log.Error("fixture backend stopped", "err", err)
		}
	}()
	defer app.Shutdown()

	client := api.NewClient("http://"+ln.Addr().String(), cfg.RequestTimeout)
	sess := session.New(session.Options{
		BoatType:  models.ParseBoatType(cfg.BoatType),
		Skill:     models.ParseSkillLevel(cfg.Skill),
		UseKnots:  cfg.UseKnots,
		ShowNight: cfg.ShowNight,
		Timezone:  cfg.Timezone,
	})

	model := ui.NewModel(sess, client, client, cfg.RequestTimeout).WithQuery(*location)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
