// Package validation provides input validation utilities for turbokit.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used for configuration structs loaded from turbo.toml / turbo.yml.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    ProjectName   string   `validate:"required"`
//	    InstalledApps []string `validate:"dive,required"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("project.name", cfg.ProjectName)
//	err := v.Validate()
package validation
