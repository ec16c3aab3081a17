package page

import (
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StylesheetAsset is the theme asset key of the XSLT entry point.
const StylesheetAsset = "xslt/all.xsl"

// DefaultStylesheet is used when no theme provides the stylesheet.
const DefaultStylesheet = "/theme/" + StylesheetAsset

// RendererConfigFromSelection flattens a selected theme and variant into a
// renderer configuration. Variant tokens, partials and asset files override
// the manifest's. Tokens are also exposed as "--<token>" CSS variables.
func RendererConfigFromSelection(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}

	manifest := selection.Manifest
	if manifest == nil {
		cfg.AssetURL = assetResolver("", nil)
		return cfg
	}

	prefix := manifest.Assets.Prefix
	files := copyStringMap(manifest.Assets.Files)
	mergeInto(cfg.Tokens, manifest.Tokens)
	mergeInto(cfg.Partials, manifest.Templates)

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		mergeInto(cfg.Tokens, variant.Tokens)
		mergeInto(cfg.Partials, variant.Templates)
		if strings.TrimSpace(variant.Assets.Prefix) != "" {
			prefix = variant.Assets.Prefix
		}
		if files == nil {
			files = map[string]string{}
		}
		mergeInto(files, variant.Assets.Files)
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

// assetResolver maps an asset key to a URL under prefix. Keys listed in files
// are renamed first; other keys are treated as paths relative to prefix.
func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	return func(key string) string {
		key = strings.TrimSpace(key)
		if key == "" {
			return ""
		}
		if mapped, ok := files[key]; ok && strings.TrimSpace(mapped) != "" {
			key = mapped
		}
		if strings.Contains(key, "://") || strings.HasPrefix(key, "/") {
			return key
		}
		if prefix == "" {
			return key
		}
		return prefix + "/" + path.Clean(key)
	}
}

func mergeInto(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
