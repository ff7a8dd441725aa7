package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type (
	Config struct {
		GeminiAPIKey     string `json:"gemini_api_key"`
		Model            string `json:"model"`
		Language         string `json:"language"`
		SuggestionsCount int    `json:"suggestions_count"`
		PathFile         string `json:"path_file"`

		GitHub GitHubConfig `json:"github"`
	}

	GitHubConfig struct {
		Owner string `json:"owner,omitempty"`
		Repo  string `json:"repo,omitempty"`
		Token string `json:"token,omitempty"`
	}
)

const (
	defaultLang             = "en"
	defaultModel            = "gemini-1.5-flash"
	defaultSuggestionsCount = 3
)

// LoadConfig carga la configuración desde path. Si path termina en .json se
// usa directamente; si no, se interpreta como el home y la configuración vive
// en <path>/.resumate/config.json. Si el archivo no existe se crea con los
// valores por defecto.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".resumate")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:         defaultLang,
		Model:            defaultModel,
		SuggestionsCount: defaultSuggestionsCount,
		PathFile:         path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language no puede estar vacío")
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.SuggestionsCount <= 0 {
		config.SuggestionsCount = defaultSuggestionsCount
	}
	return nil
}

// HasGitHub indica si la configuración de GitHub está completa.
func (c *Config) HasGitHub() bool {
	return c.GitHub.Owner != "" && c.GitHub.Repo != "" && c.GitHub.Token != ""
}
