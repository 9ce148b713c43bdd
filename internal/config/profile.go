package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

// Profile é o cabeçalho público do estúdio.
type Profile struct {
	Name            string   `yaml:"name" json:"name"`
	Title           string   `yaml:"title" json:"title"`
	Bio             string   `yaml:"bio" json:"bio"`
	Avatar          string   `yaml:"avatar" json:"avatar"`
	WhatsApp        string   `yaml:"whatsapp" json:"whatsapp"`
	Tagline         string   `yaml:"tagline" json:"tagline"`
	ContactGreeting string   `yaml:"contact_greeting" json:"contact_greeting"`
	Footer          []string `yaml:"footer" json:"footer"`
}

// LoadProfile usa o arquivo informado ou, se vazio, o perfil embutido.
func LoadProfile(path string) (*Profile, error) {
	data := defaultProfile
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read profile: %w", err)
		}
		data = b
	}
	return ParseProfile(data)
}

func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, errors.New("parse profile: name is required")
	}
	if strings.TrimSpace(p.WhatsApp) == "" {
		return nil, errors.New("parse profile: whatsapp is required")
	}
	return &p, nil
}
