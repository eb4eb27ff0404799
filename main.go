package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"elfrevenge/config"
	"elfrevenge/game"
	"elfrevenge/highscore"
	"elfrevenge/sim"
)

func main() {
	settings := config.Load()
	cfg := game.NewConfig(settings)

	var audio sim.AudioSink
	if !settings.Mute {
		audio = game.NewAudioPlayer()
	}

	g, err := game.NewGame(cfg, settings.NewRand(), audio, highscore.NewFileStore(settings.ScoresPath))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(sim.MessageTitle)
	ebiten.SetTPS(settings.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
