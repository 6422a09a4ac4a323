package config

import "github.com/odoo-term/odterm/internal/domain"

// Provider wraps configuration operations and implements domain.ConfigProvider.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set writes key=value to the rc file.
func (p *Provider) Set(key, value string) error {
	return Edit(func(lines []string) ([]string, bool) {
		lines, _ = Set(lines, key, value)
		return lines, true
	})
}

// Unset drops key from the rc file.
func (p *Provider) Unset(key string) error {
	return Edit(func(lines []string) ([]string, bool) {
		return Unset(lines, key)
	})
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
