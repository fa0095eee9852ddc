// Package config loads richtext settings.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a user TOML file: the explicit path, else $XDG_CONFIG_HOME/richtext/config.toml
//  3. RICHTEXT_<SECTION>_<KEY> environment variables, e.g. RICHTEXT_RENDER_MAX_DEPTH
//
// The merged tree is decoded into Config with mapstructure and validated.
package config
