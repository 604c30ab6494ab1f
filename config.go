package pagectl

import (
	. "github.com/cdvelop/tinystring"
	"gopkg.in/yaml.v3"
)

// Elements names the page markup the controller looks for.
// IDs are plain element ids, the rest are CSS selectors.
type Elements struct {
	WelcomeID       string `yaml:"welcome_id"`
	MenuTrigger     string `yaml:"menu_trigger"`
	MenuPanel       string `yaml:"menu_panel"`
	MenuLinks       string `yaml:"menu_links"`
	FormID          string `yaml:"form_id"`
	FormInputs      string `yaml:"form_inputs"`
	ErrorSuffix     string `yaml:"error_suffix"`
	ResultSectionID string `yaml:"result_section_id"`
	ResultContentID string `yaml:"result_content_id"`
	Anchors         string `yaml:"anchors"`
}

// Config contains pagectl configuration
// NOTE: Logger is NOT here - configured via SetLogger()
type Config struct {
	// StorageKey holds the visitor name. Default: "userName"
	StorageKey string `yaml:"storage_key"`

	// PromptMessage shown when no name is stored
	PromptMessage string `yaml:"prompt_message"`

	// SubmitGuardWindow in milliseconds. Default: 2000
	SubmitGuardWindow int `yaml:"submit_guard_window"`

	// ResultHideDelay in milliseconds. Default: 5000
	ResultHideDelay int `yaml:"result_hide_delay"`

	// RevealSelectors are observed and faded in on first intersection
	RevealSelectors []string `yaml:"reveal_selectors"`

	// RevealThreshold fraction of the element that must be visible. Default: 0.1
	RevealThreshold float64 `yaml:"reveal_threshold"`

	// RevealRootMargin passed to the observer. Default: "0px 0px -50px 0px"
	RevealRootMargin string `yaml:"reveal_root_margin"`

	// RevealAnimation CSS animation value applied on reveal
	RevealAnimation string `yaml:"reveal_animation"`

	// FocusShadow box-shadow applied to a focused input
	FocusShadow string `yaml:"focus_shadow"`

	// SuccessMessage closes the confirmation view. May hold inline markup
	// (em, b, i, br); anything else is stripped before display.
	SuccessMessage string `yaml:"success_message"`

	// LoadedMessage logged once Start completes
	LoadedMessage string `yaml:"loaded_message"`

	Elements Elements `yaml:"elements"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		StorageKey:        "userName",
		PromptMessage:     "Please input your name so we can Welcome You",
		SubmitGuardWindow: 2000,
		ResultHideDelay:   5000,
		RevealSelectors: []string{
			".location-card",
			".stat-item",
			".vm-card",
			".value-card",
			".contact-item",
		},
		RevealThreshold:  0.1,
		RevealRootMargin: "0px 0px -50px 0px",
		RevealAnimation:  "slideDown 0.6s ease-out",
		FocusShadow:      "0 0 0 3px rgba(102, 126, 234, 0.1)",
		SuccessMessage:   "✓ Your message has been received successfully",
		LoadedMessage:    "✓ MyWebsite - JavaScript loaded successfully",
		Elements: Elements{
			WelcomeID:       "userName",
			MenuTrigger:     ".hamburger",
			MenuPanel:       ".nav-menu",
			MenuLinks:       ".nav-link",
			FormID:          "contactForm",
			FormInputs:      ".form-group input",
			ErrorSuffix:     "Error",
			ResultSectionID: "resultSection",
			ResultContentID: "resultContent",
			Anchors:         `a[href^="#"]`,
		},
	}
}

// LoadConfig parses YAML over DefaultConfig. Keys missing from data keep their defaults.
func LoadConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, Errf("parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.StorageKey == "" {
		return Errf("storage_key is required")
	}
	if c.SubmitGuardWindow < 0 {
		return Errf("submit_guard_window must be >= 0")
	}
	if c.ResultHideDelay < 0 {
		return Errf("result_hide_delay must be >= 0")
	}
	if c.RevealThreshold < 0 || c.RevealThreshold > 1 {
		return Errf("reveal_threshold must be within [0, 1], got %v", c.RevealThreshold)
	}
	return nil
}
