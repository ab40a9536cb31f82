package translator

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/dangehub/dualtext/internal/config"
)

// Google translates through the Cloud Translation API. Credentials come from
// a service-account file, an API key, or ambient application-default
// credentials, in that order.
type Google struct {
	cfg config.Config
}

func NewGoogle(cfg config.Config) *Google {
	return &Google{cfg: cfg}
}

func (g *Google) Name() string { return "google" }

func (g *Google) Translate(ctx context.Context, text string) (string, error) {
	target, err := language.Parse(g.cfg.ToLang)
	if err != nil {
		return "", &ConfigError{Reason: fmt.Sprintf("invalid target language %q: %v", g.cfg.ToLang, err)}
	}

	var opts []option.ClientOption
	switch {
	case g.cfg.Credentials != "":
		opts = append(opts, option.WithCredentialsFile(g.cfg.Credentials))
	case g.cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(g.cfg.APIKey))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return "", &BackendError{Backend: g.Name(), Err: fmt.Errorf("create client: %w", err)}
	}
	defer client.Close()

	var transOpts *translate.Options
	if g.cfg.FromLang != "" && g.cfg.FromLang != "auto" {
		source, err := language.Parse(g.cfg.FromLang)
		if err != nil {
			return "", &ConfigError{Reason: fmt.Sprintf("invalid source language %q: %v", g.cfg.FromLang, err)}
		}
		transOpts = &translate.Options{Source: source}
	}

	translations, err := client.Translate(ctx, []string{text}, target, transOpts)
	if err != nil {
		return "", &BackendError{Backend: g.Name(), Err: fmt.Errorf("translate: %w", err)}
	}
	if len(translations) == 0 {
		return "", nil
	}
	return translations[0].Text, nil
}
