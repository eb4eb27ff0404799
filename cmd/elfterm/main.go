package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"elfrevenge/config"
	"elfrevenge/highscore"
	"elfrevenge/sim"
	"elfrevenge/sound"
	"elfrevenge/term"
)

func main() {
	envFile := flag.String("env", "", "Env file to load before the environment (default .env)")
	mute := flag.Bool("mute", false, "Disable sound (or set "+config.EnvMute+")")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	settings := config.Load(files...)
	if *mute {
		settings.Mute = true
	}

	if err := run(settings); err != nil {
		log.Fatal(err)
	}
}

func run(settings config.Settings) error {
	logOut, closeLog, err := settings.OpenLog()
	if err != nil {
		log.Printf("Failed to open log file, logging disabled: %v", err)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	// The screen owns the terminal until Fini; keep log lines off it.
	stderr := log.Writer()
	log.SetOutput(logOut)
	defer log.SetOutput(stderr)

	speaker := sound.NewSpeaker()
	if !settings.Mute {
		if err := speaker.Init(); err != nil {
			// Non-fatal, the game runs silent
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer speaker.Close()

	session := sim.NewSession(sim.DefaultConfig(), settings.NewRand(), speaker,
		highscore.NewFileStore(settings.ScoresPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.New(screen, session, settings.TPS).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
