// deskmate is a terminal virtual pet: an animated text-art avatar that
// answers questions about the host (battery, CPU, Wi-Fi), runs small
// actions (launch apps, mute audio, read the clipboard), and plays two
// tiny games. Run without arguments to start the pet.
package main

import (
	"fmt"
	"os"
	"strings"

	"deskmate/cmd/deskmate/tui"
	"deskmate/cmd/deskmate/ui"
	"deskmate/internal/avatar"
	"deskmate/internal/config"
	"deskmate/internal/logging"
	"deskmate/internal/respond"
	"deskmate/internal/sysinfo"
	"deskmate/internal/sysops"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var (
	configPath string
	idlePath   string
	talkPath   string
	blinkPath  string
)

var rootCmd = &cobra.Command{
	Use:   "deskmate",
	Short: "deskmate - a desk pet that watches your machine",
	Long: `deskmate keeps a small animated companion in your terminal.

Type to it: it answers questions about battery, CPU, memory and Wi-Fi,
launches apps, reads the clipboard, remembers small facts about you,
and plays number-guessing and rock-paper-scissors.

Run without arguments to start the pet. The three sprite files (idle,
talk, blink) must exist; point at them with flags, config, or the
DESKMATE_SPRITE_* environment variables. Example art ships under
assets/sprites/.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPet()
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [text]",
	Short: "Ask one question without starting the pet",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfigAndLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		responder := newResponder(cfg, log)
		var state respond.State
		text := strings.ToLower(strings.TrimSpace(strings.Join(args, " ")))
		reply := responder.Respond(&state, text)
		fmt.Println(reply.Text)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the status summary the pet announces hourly",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfigAndLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		fmt.Println(newResponder(cfg, log).Summary())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the deskmate version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("deskmate %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")
	rootCmd.Flags().StringVar(&idlePath, "idle", "", "idle sprite file")
	rootCmd.Flags().StringVar(&talkPath, "talk", "", "talk sprite file")
	rootCmd.Flags().StringVar(&blinkPath, "blink", "", "blink sprite file")

	rootCmd.AddCommand(askCmd, summaryCmd, versionCmd)
}

func runPet() error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Flags beat config and environment.
	if idlePath != "" {
		cfg.Sprites.Idle = idlePath
	}
	if talkPath != "" {
		cfg.Sprites.Talk = talkPath
	}
	if blinkPath != "" {
		cfg.Sprites.Blink = blinkPath
	}

	// All three sprites must exist before any UI is created: one
	// diagnostic line per missing file, then a non-zero exit.
	if errs := avatar.ValidateSpritePaths(cfg.Sprites.Idle, cfg.Sprites.Talk, cfg.Sprites.Blink); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}

	sprites, err := avatar.LoadSprites(cfg.Sprites.Idle, cfg.Sprites.Talk, cfg.Sprites.Blink)
	if err != nil {
		return err
	}

	watcher, err := avatar.WatchSprites(sprites.Paths(), log)
	if err != nil {
		// Hot reload is a nicety; the pet runs without it.
		log.Warn("sprite watcher unavailable", zap.Error(err))
		watcher = nil
	} else {
		defer func() { _ = watcher.Close() }()
	}

	model := tui.New(tui.Params{
		Sprites:   sprites,
		Watcher:   watcher,
		Responder: newResponder(cfg, log),
		Styles:    ui.NewStyles(ui.DetectTheme()),
		Logger:    log,
	})

	log.Info("starting pet", zap.String("version", version))
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func loadConfigAndLogger() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logging: %w", err)
	}
	return cfg, log, nil
}

func newResponder(cfg *config.Config, log *zap.Logger) *respond.Responder {
	return respond.New(respond.Deps{
		Info:      sysinfo.NewProbe(log),
		Launcher:  sysops.NewLauncher(cfg.Apps, log),
		Clipboard: sysops.SystemClipboard{},
		Audio:     sysops.SystemAudio{},
		Recent:    sysops.DocumentsLister{Dir: cfg.DocumentsDir},
		Logger:    log,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
