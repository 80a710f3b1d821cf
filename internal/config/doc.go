// Package config provides the configuration system for edj.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Flags (Config.Set)      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment (EDJ_*)     │
//	├─────────────────────────────┤
//	│  2. Config file             │  ← edj.toml / edj.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Settings are addressed by dot-separated paths such as "editor.undoLimit".
//
// # Usage
//
//	cfg := config.New(config.WithFile("edj.toml"))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	limit := cfg.Editor().UndoLimit
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML) and environment variables
package config
