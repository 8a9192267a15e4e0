package main

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/vnplayer/pkg/app"
	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/embedded"
	"github.com/decker502/vnplayer/pkg/script"
)

type playOptions struct {
	scriptPath string
	configPath string
	resDir     string
	verbose    bool
}

func playCmd() *cobra.Command {
	var opts playOptions
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open a window and play a story script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runPlay(opts)
		},
	}
	cmd.Flags().StringVar(&opts.scriptPath, "script", "", "script file (default: config script, then the bundled demo)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "player config YAML (default: bundled data/config/player.yaml)")
	cmd.Flags().StringVar(&opts.resDir, "res", "", "resource directory containing bg/, char/ and sfx/")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable logging and the FPS counter")
	return cmd
}

func runPlay(opts playOptions) error {
	player, err := loadPlayerConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.resDir != "" {
		player.ResourceDir = opts.resDir
	}
	resources := os.DirFS(player.ResourceDir)

	s, err := loadScript(opts.scriptPath, player, resources)
	if err != nil {
		return err
	}

	a, err := app.NewApp(app.Config{
		Verbose:   opts.verbose,
		Player:    player,
		Script:    s,
		Resources: resources,
	})
	if err != nil {
		return err
	}
	a.ConfigureWindow(player.Window.Title, player.TicksPerSecond)

	if err := ebiten.RunGame(a); err != nil {
		log.Printf("[Main] Fatal: %v", err)
		return err
	}
	return nil
}

// loadPlayerConfig 读取 --config 指定的文件，未指定时使用内置配置
func loadPlayerConfig(path string) (*config.PlayerConfig, error) {
	if path != "" {
		return config.LoadPlayerConfig(path)
	}
	return embedded.DefaultConfig()
}

// loadScript 剧本来源优先级：--script、配置中的 script（相对资源目录）、内置演示剧本
func loadScript(path string, player *config.PlayerConfig, resources fs.FS) (*script.Script, error) {
	switch {
	case path != "":
		return script.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	case player.Script != "":
		return script.Load(resources, player.Script)
	case embedded.Exists(embedded.DemoScriptPath):
		log.Printf("[Play] No script given, playing bundled demo")
		return embedded.DemoScript()
	default:
		return nil, errors.New("no script: pass --script or set script in the config")
	}
}
