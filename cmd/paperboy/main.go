package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"chosenoffset.com/paperboy/internal/audio"
	"chosenoffset.com/paperboy/internal/config"
	"chosenoffset.com/paperboy/internal/game"
	ebitenrender "chosenoffset.com/paperboy/internal/render/ebiten"
	"chosenoffset.com/paperboy/internal/world/maploader"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	configPath := flag.String("config", envOr(config.EnvConfigPath, "data/paperboy.json"), "path to config JSON")
	envFile := flag.String("env", "", "optional env file applied to the config only")
	flag.Parse()

	if err := run(*configPath, *envFile); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, envFile string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	if envFile != "" {
		if err := cfg.ApplyEnvFile(envFile); err != nil {
			return err
		}
	}

	gameMap, err := loadMap(cfg.MapPath)
	if err != nil {
		return fmt.Errorf("failed to load map: %w", err)
	}
	log.Printf("Map loaded name=%q intersections=%d segments=%d houses=%d",
		gameMap.Data.Name, gameMap.Roads.IntersectionCount(), gameMap.Roads.SegmentCount(), len(gameMap.Houses))

	seed := cfg.Delivery.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Delivery seed=%d base_duration=%.2fs", seed, cfg.Delivery.BaseDuration)

	g, err := game.New(cfg, gameMap, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	chime := audio.NewChime(cfg.Audio)
	if err := chime.Initialize(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	}
	defer chime.Close()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()
	g.SetPresentation(renderer, inputMgr, chime)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)

	log.Println("Starting game...")
	return engine.RunGame(g)
}

func loadMap(path string) (*maploader.Map, error) {
	if path == "" {
		return maploader.DefaultMap()
	}
	return maploader.LoadMap(path)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
