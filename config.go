package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	CanvasWidth   int
	CanvasHeight  int
	Background    string
	Color         string
	BrushSize     float64
	FontSize      float64
	CellWidth     float64
	CellHeight    float64
	LogFile       string
}

func defaultConfig() *Config {
	return &Config{
		CanvasWidth:  800,
		CanvasHeight: 600,
		Background:   defaultBg,
		Color:        defaultColor,
		BrushSize:    defaultBrushSize,
		FontSize:     defaultFontSize,
		CellWidth:    10,
		CellHeight:   20,
	}
}

// loadConfig reads ~/.wirecanvasrc. A missing or unreadable file yields the
// defaults.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFrom(filepath.Join(homeDir, ".wirecanvasrc"))
}

func loadConfigFrom(configPath string) *Config {
	config := defaultConfig()

	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		case "canvaswidth", "canvas_width", "width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.CanvasWidth = n
			}
		case "canvasheight", "canvas_height", "height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.CanvasHeight = n
			}
		case "background", "bg":
			config.Background = value
		case "color", "colour":
			config.Color = value
		case "brushsize", "brush_size":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.BrushSize = f
			}
		case "fontsize", "font_size":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.FontSize = f
			}
		case "cellwidth", "cell_width":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.CellWidth = f
			}
		case "cellheight", "cell_height":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.CellHeight = f
			}
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
