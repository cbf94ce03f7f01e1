package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/firstperson/bot"
	"github.com/milk9111/firstperson/controller"
	"github.com/milk9111/firstperson/input"
	"github.com/milk9111/firstperson/prefabs"
	"github.com/milk9111/firstperson/sound"
)

func main() {
	specPath := flag.String("spec", "character.yaml", "character spec in prefabs/ (embedded default used when absent on disk)")
	botScript := flag.String("bot", "", "drive the character from a tengo autopilot script; 'default' for the built-in one")
	mute := flag.Bool("mute", false, "disable audio output")
	flag.Parse()

	spec, err := prefabs.LoadCharacterSpec(*specPath)
	if err != nil {
		log.Fatalf("load character spec: %v", err)
	}
	cfg := prefabs.BuildConfig(spec)

	var aud controller.Audio = sound.Muted{}
	if !*mute {
		player := sound.NewPlayer()
		player.Register("jump", sound.Tone(660, 120*time.Millisecond, 0.4))
		player.Register("land", sound.Tone(140, 180*time.Millisecond, 0.6))
		player.Register("step_a", sound.Tone(220, 60*time.Millisecond, 0.3))
		player.Register("step_b", sound.Tone(196, 60*time.Millisecond, 0.3))
		aud = player
	}

	var driver *bot.Driver
	var keyboard *input.Keyboard
	if *botScript != "" {
		src := bot.DefaultScript
		if *botScript != "default" {
			src, err = os.ReadFile(*botScript)
			if err != nil {
				log.Fatalf("read bot script: %v", err)
			}
		}
		driver, err = bot.New(src)
		if err != nil {
			log.Fatalf("bot: %v", err)
		}
	} else {
		keyboard = input.NewKeyboard(bindingsFromSpec(spec))
	}

	game := NewGame(cfg, keyboard, driver, aud)

	// Watch the on-disk prefabs dir when present so spec edits apply
	// without a restart.
	if _, statErr := os.Stat("prefabs"); statErr == nil {
		watcher, watchErr := prefabs.NewWatcher("prefabs")
		if watchErr != nil {
			log.Printf("spec watcher disabled: %v", watchErr)
		} else {
			defer watcher.Close()
			game.WatchSpec(watcher, *specPath)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("firstperson")
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func bindingsFromSpec(spec *prefabs.CharacterSpec) input.Bindings {
	bindings := input.DefaultBindings()
	for action, name := range map[controller.Action]string{
		controller.ActionSprint: spec.Keys.Sprint,
		controller.ActionCrouch: spec.Keys.Crouch,
		controller.ActionJump:   spec.Keys.Jump,
	} {
		if name == "" {
			continue
		}
		key, err := input.ParseKey(name)
		if err != nil {
			log.Printf("keybinding: %v", err)
			continue
		}
		bindings[action] = key
	}
	return bindings
}
