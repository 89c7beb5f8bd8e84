// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper.
//
// Configuration is loaded from ~/.config/pedir/config.yaml (or the XDG
// equivalent on Linux, ~/Library/Application Support/pedir/config.yaml
// on macOS, %APPDATA%\pedir\config.yaml on Windows), with environment
// overrides under the PEDIR_ prefix. A missing config file is not an
// error; every key has a default.
package config
