// Package scan discovers the components declared by a project's installed
// apps and classifies them by their metadata tags.
//
// Apps publish their modules through component.Register, usually from an
// init function, and list themselves under installed_apps in the project
// configuration. The scanner walks that list, collects every component the
// modules and their direct children declare, and answers classification
// queries for the bootstrap layer:
//
//	scanner := scan.New(cfg, nil)
//	components := scanner.ScanInstalledApps()
//	controllers := scanner.FindControllers()
//	tasks := scanner.FindTasks()
//
// A module is scanned at most once per Scanner, so a second
// ScanInstalledApps call returns an empty slice. The Find queries are not
// affected by that memo; they always see the full component set.
package scan
