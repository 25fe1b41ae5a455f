package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/ngmaloney/sailing-score/internal/api"
	"github.com/ngmaloney/sailing-score/internal/config"
	"github.com/ngmaloney/sailing-score/internal/models"
	"github.com/ngmaloney/sailing-score/internal/session"
	"github.com/ngmaloney/sailing-score/internal/ui"
)

func main() {
	apiURL := flag.String("api", "", "Base URL of the sailing score backend (overrides SAILSCORE_API_BASE_URL)")
	location := flag.String("location", "", "Search this place on startup (e.g. Barcelona)")
	boat := flag.String("boat", "", "Boat type: vela_ligera, cruiser_35, cruiser_35_45, catamaran, dinghy, windsurf")
	skill := flag.String("skill", "", "Skill level: principiante, intermedio, avanzado")
	tz := flag.String("tz", "", "Display timezone (e.g. Europe/Madrid)")
	ms := flag.Bool("ms", false, "Show wind speeds in m/s instead of knots")
	night := flag.Bool("night", false, "Show night slots")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the environment, but only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "api":
			cfg.APIBaseURL = *apiURL
		case "boat":
			cfg.BoatType = *boat
		case "skill":
			cfg.Skill = *skill
		case "tz":
			cfg.Timezone = *tz
		case "ms":
			cfg.UseKnots = !*ms
		case "night":
			cfg.ShowNight = *night
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	closer, err := config.SetupLogging(cfg)
	if err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := client.Health(ctx); err != nil {
		log.Warn("backend health check failed", "url", cfg.APIBaseURL, "err", err)
	}
	cancel()

	sess := session.New(session.Options{
		BoatType:  models.ParseBoatType(cfg.BoatType),
		Skill:     models.ParseSkillLevel(cfg.Skill),
		UseKnots:  cfg.UseKnots,
		ShowNight: cfg.ShowNight,
		Timezone:  cfg.Timezone,
	})
	log.Info("starting", "api", cfg.APIBaseURL, "timezone", sess.Timezone, "boat", sess.BoatType, "skill", sess.Skill)

	model := ui.NewModel(sess, client, client, cfg.RequestTimeout).WithQuery(*location)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
