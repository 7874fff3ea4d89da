package config

import "github.com/BurntSushi/toml"

// TOML implements a koanf.Parser for TOML documents.
type TOML struct{}

// Parser returns a TOML parser.
func Parser() *TOML {
	return &TOML{}
}

// Unmarshal parses TOML bytes into a nested map.
func (p *TOML) Unmarshal(b []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal encodes a nested map as TOML.
func (p *TOML) Marshal(o map[string]any) ([]byte, error) {
	return toml.Marshal(o)
}
