package main

import (
	"fmt"
	"os"

	"termui/button"
	"termui/config"
	tcelldevice "termui/device/tcell"
	"termui/lifecycle"
	"termui/logging"
	"termui/theme"
	"termui/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "buttons",
	Short: "Push buttons, check boxes and radio buttons in the terminal",
	Long: `buttons shows a form of push buttons, check boxes and radio buttons.
Tab and Backtab move the focus, Enter and Space activate the focused control,
Alt+letter activates the control with that underlined letter. Esc quits.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load[config.Config](cmd, config.Defaults(), configPath)
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/buttons/buttons.yaml)")
	rootCmd.Flags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.Flags().String("log-file", "buttons.log", "file receiving the log")
	rootCmd.Flags().String("theme", "", "palette YAML file")
	rootCmd.Flags().Bool("mouse-motion", true, "track the pointer while no button is held")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logging.SetOutput(logFile)

	palette := theme.DefaultPalette(termenv.HasDarkBackground())
	if cfg.Theme != "" {
		if palette, err = theme.LoadPalette(cfg.Theme, palette); err != nil {
			return err
		}
	}
	ui.SetTheme(theme.New(palette))

	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()
	defer func() {
		output := termenv.NewOutput(os.Stdout)
		defer output.SetForegroundColor(fg)
		defer output.SetBackgroundColor(bg)
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	manager := ui.NewManager()
	root := buildForm()
	manager.SetRoot(root)

	device, err := tcelldevice.NewDevice(screen, manager, cfg.MouseMotion)
	if err != nil {
		return err
	}
	manager.FocusNext(true)

	logging.Infof("buttons: started")
	device.Run(lifecycle.New())
	ui.Destroy(root)
	logging.Infof("buttons: stopped")
	return nil
}

const (
	sizeGroup = iota + 1
	colorGroup
)

// buildForm creates the demo widget tree.
func buildForm() ui.Widget {
	ok := button.NewButton("&OK")
	ok.SetName("ok")
	ok.SetFocusMagnet(true)
	cancel := button.NewButton("&Cancel")
	cancel.SetName("cancel")
	cancel.SetIconAdapter(button.NewGlyphIcon('✗', ui.AlignLeft))

	wrap := button.NewCheckBox("&Wrap lines", button.Check)
	bold := button.NewCheckBox("&Bold", button.Push)
	disabled := button.NewCheckBox("Disabled", button.Check)
	disabled.SetEnabled(false)

	small := button.NewRadioButton("&Small", sizeGroup, button.Radio)
	medium := button.NewRadioButton("&Medium", sizeGroup, button.Radio)
	large := button.NewRadioButton("&Large", sizeGroup, button.Radio)
	medium.SetSelected(true)

	red := button.NewRadioButton("&Red", colorGroup, button.Push)
	green := button.NewRadioButton("&Green", colorGroup, button.Push)
	blue := button.NewRadioButton("Bl&ue", colorGroup, button.Push)
	red.SetSelected(true)

	for _, b := range []*button.ButtonBase{
		&ok.ButtonBase, &cancel.ButtonBase,
		&wrap.ButtonBase, &bold.ButtonBase, &disabled.ButtonBase,
		&small.ButtonBase, &medium.ButtonBase, &large.ButtonBase,
		&red.ButtonBase, &green.ButtonBase, &blue.ButtonBase,
	} {
		b.Click.Attach(logClick)
		b.Select.Attach(logSelect)
	}

	form := ui.Column(
		ui.Row(wrap, bold, disabled).SetGap(2),
		ui.Row(small, medium, large).SetGap(2),
		ui.Row(red, green, blue).SetGap(1),
		ui.Row(ok, cancel).SetGap(2),
	).SetGap(1)
	form.SetBorder(ui.Insets{Top: 1, Left: 2, Right: 2, Bottom: 1})
	return form
}

func logClick(ev *ui.Event) {
	logging.Infof("click: %s", label(ev.Source))
}

func logSelect(ev *ui.Event) {
	logging.Debugf("select: %s selected=%v", label(ev.Source), ui.BaseOf(ev.Source).IsSelected())
}

func label(w ui.Widget) string {
	text, _ := ui.StripMnemonic(ui.BaseOf(w).Text())
	return text
}
