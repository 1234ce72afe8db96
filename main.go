package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	canvasWidth  int
	canvasHeight int

	config *Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wirecanvas [file]",
	Short: "Terminal wireframe canvas editor",
	Long: `wirecanvas is a wireframe sketching canvas for the terminal.

Draw with the pen, place rectangles, circles, lines and text labels, then
select, move and resize them with the mouse. Documents are saved as JSON and
can be rendered to PNG or summarized for a design generator.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			config = loadConfigFrom(configPath)
		} else {
			config = loadConfig()
		}
		if cmd.Flags().Changed("width") {
			config.CanvasWidth = canvasWidth
		}
		if cmd.Flags().Changed("height") {
			config.CanvasHeight = canvasHeight
		}

		var err error
		logger, err = newLogger(config.LogFile, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runEditor,
}

var renderCmd = &cobra.Command{
	Use:   "render [in.json] [out.png]",
	Short: "Render a saved document to PNG",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := LoadDocument(args[0])
		if err != nil {
			return err
		}
		if err := renderDocumentPNG(doc, args[1]); err != nil {
			return err
		}
		logger.Info("rendered document", zap.String("in", args[0]), zap.String("out", args[1]))
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe [in.json]",
	Short: "Print the coarse layout of a saved document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := LoadDocument(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), DescribeLayout(doc).Prompt())
		return nil
	},
}

var newCmd = &cobra.Command{
	Use:   "new [out.json]",
	Short: "Write an empty document sized from the configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := NewDocument(config.CanvasWidth, config.CanvasHeight, config.Background)
		if err := validateDocument(doc); err != nil {
			return err
		}
		return SaveDocument(config.GetSavePath(args[0]), doc)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.wirecanvasrc)")
	rootCmd.PersistentFlags().IntVar(&canvasWidth, "width", 800, "Canvas width")
	rootCmd.PersistentFlags().IntVar(&canvasHeight, "height", 600, "Canvas height")

	rootCmd.AddCommand(renderCmd, describeCmd, newCmd)
}

func newEditorFromConfig(cfg *Config, log *zap.Logger) (*Editor, error) {
	editor := NewEditor(cfg.CanvasWidth, cfg.CanvasHeight, cfg.Background, log)
	if err := editor.SetColor(cfg.Color); err != nil {
		return nil, err
	}
	editor.SetBrushSize(cfg.BrushSize)
	editor.SetFontSize(cfg.FontSize)
	if err := validateDocument(editor.Document()); err != nil {
		return nil, err
	}
	return editor, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	editor, err := newEditorFromConfig(config, logger)
	if err != nil {
		return err
	}
	m := newModel(editor, config, logger)
	if len(args) == 1 {
		if err := m.openFile(args[0]); err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
