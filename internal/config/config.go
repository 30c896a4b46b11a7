package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig application configuration, loaded from config.toml next to the
// executable. Missing file means defaults.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Window WindowConfig `toml:"window"`
}

// ServerConfig local HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig on-disk layout. Relative paths resolve against the executable
// directory so double-clicking the binary keeps everything next to it.
type DataConfig struct {
	ProjectsDir  string `toml:"projects_dir"`
	VendorsDir   string `toml:"vendors_dir"`
	TemplatePath string `toml:"template_path"`
}

// WindowConfig initial window geometry for the webview host.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// LoadInfo metadata about what the config file actually specified.
type LoadInfo struct {
	PortSpecified bool
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    18460,
			DevMode: false,
		},
		Data: DataConfig{
			ProjectsDir:  "projects",
			VendorsDir:   "vendors",
			TemplatePath: "Final PO Format.xlsx",
		},
		Window: WindowConfig{
			Width:  1320,
			Height: 810,
		},
	}
}

// ExeDir returns the directory of the running executable.
func ExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func isPortSpecified(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	serverAny, ok := raw["server"]
	if !ok {
		return false
	}
	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}
	_, ok = serverMap["port"]
	return ok
}

// LoadWithInfo loads config.toml from the executable directory and reports
// which settings the file carried (so CLI flags only override unset ones).
func LoadWithInfo() (*AppConfig, LoadInfo, error) {
	info := LoadInfo{}
	cfg := Default()

	exeDir, err := ExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := os.ReadFile(filepath.Join(exeDir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecified(data)

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, info, err
	}

	applyEnv(cfg)
	return cfg, info, nil
}

// Load loads config.toml from the executable directory.
func Load() (*AppConfig, error) {
	cfg, _, err := LoadWithInfo()
	return cfg, err
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PODESK_TEMPLATE_PATH"); v != "" {
		cfg.Data.TemplatePath = v
	}
}

// ApplyDataDir points the projects and vendors directories at a common base
// directory, as the -dataDir flag does.
func ApplyDataDir(cfg *AppConfig, dir string) {
	cfg.Data.ProjectsDir = filepath.Join(dir, "projects")
	cfg.Data.VendorsDir = filepath.Join(dir, "vendors")
}

// ResolvePath resolves a configured path against the executable directory.
// Absolute paths pass through unchanged.
func ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	exeDir, err := ExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, path)
}

// EnsureDataDirs creates the projects and vendors directories and returns
// their resolved paths.
func EnsureDataDirs(cfg *AppConfig) (projectsDir string, vendorsDir string, err error) {
	projectsDir = ResolvePath(cfg.Data.ProjectsDir)
	vendorsDir = ResolvePath(cfg.Data.VendorsDir)

	if err = os.MkdirAll(projectsDir, 0755); err != nil {
		return "", "", err
	}
	if err = os.MkdirAll(vendorsDir, 0755); err != nil {
		return "", "", err
	}
	return projectsDir, vendorsDir, nil
}
