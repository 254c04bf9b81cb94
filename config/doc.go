// Package config resolves repotidy settings from layered sources.
//
// Precedence, highest first:
//  1. Command-line flags
//  2. Environment variables (REPOTIDY_<KEY>, plus NO_COLOR)
//  3. Global config (~/.config/repotidy/config.yaml)
//  4. Built-in defaults
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.DefaultGlobalPath())
//	settings, err := config.Load(resolver, map[string]string{
//	    config.KeyDryRun: "true",
//	})
//
// Each resolved value tracks where it came from ("default", "global", "env"
// or "flag"), which `repotidy config list` prints.
//
// # Config File
//
//	roots: [~/code/pers, ~/code/bricolage]
//	staging_branch: staging
//	master_branch: master
//	divergence: ahead
//	poll_interval: 15s
package config
