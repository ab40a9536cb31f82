// Package config holds the immutable settings snapshot a translation session
// works from. A Config is a plain value: copying it is taking the snapshot.
package config

import "time"

// Backend type identifiers accepted in Config.APIType.
const (
	APITypeSimple = "simple"
	APITypeOpenAI = "openai"
	APITypeGoogle = "google"
)

// Config is the settings snapshot for one translation session. Sessions never
// read live configuration; they receive a Config copy at construction and are
// explicitly handed a new one through UpdateSettings.
type Config struct {
	APIType string `mapstructure:"api_type" json:"api_type"`
	APIURL  string `mapstructure:"api_url" json:"api_url"`
	APIKey  string `mapstructure:"api_key" json:"api_key"`
	Model   string `mapstructure:"model" json:"model"`

	FromLang string `mapstructure:"from_lang" json:"from_lang"`
	ToLang   string `mapstructure:"to_lang" json:"to_lang"`

	// Prompt templates for the chat-style backend. Placeholders {text},
	// {from} and {to} are substituted wherever they occur.
	SystemPrompt string `mapstructure:"system_prompt" json:"system_prompt"`
	UserPrompt   string `mapstructure:"user_prompt" json:"user_prompt"`

	// SkipSelectors lists CSS selectors whose subtrees are never translated.
	// Invalid entries are tolerated as never-matching.
	SkipSelectors []string `mapstructure:"skip_selectors" json:"skip_selectors"`

	// HideOriginal marks paired originals with a presentational hidden flag
	// after translation instead of removing them.
	HideOriginal bool `mapstructure:"hide_original" json:"hide_original"`

	// Credentials is a Google Cloud credentials file path, used only by the
	// google backend when APIKey is empty.
	Credentials string `mapstructure:"credentials" json:"credentials"`

	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Default returns the baseline configuration: chat-style backend fields empty,
// automatic source language, Chinese target.
func Default() Config {
	return Config{
		APIType:    APITypeSimple,
		FromLang:   "auto",
		ToLang:     "zh",
		UserPrompt: "Translate the following text from {from} to {to}. Only respond with the translation, nothing else:\n{text}",
		Timeout:    30 * time.Second,
	}
}
