package config

import (
	"encoding/json"
	"os"
)

type Config struct {
	URL            string  `json:"url"`
	BaseURL        string  `json:"base_url"`
	OutputDir      string  `json:"output_dir"`
	TimeoutSeconds int     `json:"timeout_seconds"`
	DelaySeconds   float64 `json:"delay_seconds"`
	UserAgent      string  `json:"user_agent"`
	MappingFile    string  `json:"mapping_file"`
	// Site selector overrides. Empty fields keep the defaults.
	TitleSelector     string `json:"title_selector"`
	BodyTitleSelector string `json:"body_title_selector"`
	AuthorSelector    string `json:"author_selector"`
	BodySelector      string `json:"body_selector"`
	InfoSelector      string `json:"info_selector"`
	RefsSelector      string `json:"refs_selector"`
	TOCSelector       string `json:"toc_selector"`
	NextSelector      string `json:"next_selector"`
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
