// Package config provides project configuration loading for turbokit
// applications.
//
// It uses Viper to read turbo.toml or turbo.yml project files and supports
// environment variable overrides with the TURBO_ prefix as well as .env
// files.
//
// # Project file
//
//	[project]
//	name = "demo"
//	version = "1.0.0"
//
//	[turbo]
//	installed_apps = ["apps.home", "apps.orders"]
//
//	[turbo.logging]
//	level = "info"
//
// # Usage
//
//	cfg, err := config.Load()
package config
