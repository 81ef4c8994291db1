package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"aboard/internal/store"
	"aboard/internal/ui"
)

type config struct {
	BoardsDir    string `split_words:"true"`
	WindowWidth  int    `split_words:"true" default:"1000"`
	WindowHeight int    `split_words:"true" default:"700"`
}

func main() {
	var cfg config
	if err := envconfig.Process("aboard", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.BoardsDir == "" {
		cfg.BoardsDir = defaultBoardsDir()
	}

	boards, err := store.New(cfg.BoardsDir)
	if err != nil {
		log.Fatalf("boards: %v", err)
	}
	log.Printf("boards directory: %s", boards.Dir())

	ui.RunApp(boards, cfg.WindowWidth, cfg.WindowHeight)
}

func defaultBoardsDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "boards"
	}
	return filepath.Join(base, "aboard", "boards")
}
