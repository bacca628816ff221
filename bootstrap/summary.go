package bootstrap

import (
	"fmt"
	"time"

	"github.com/kbukum/turbokit/di"
)

// RouteInfo represents a registered HTTP route.
type RouteInfo struct {
	Method  string
	Path    string
	Handler string
}

// Summary tracks and displays the application bootstrap process.
type Summary struct {
	appName         string
	version         string
	startupDuration time.Duration
	apps            []string
	routes          []RouteInfo
}

// NewSummary creates a new bootstrap summary tracker.
func NewSummary(appName, version string) *Summary {
	return &Summary{
		appName: appName,
		version: version,
		apps:    make([]string, 0),
		routes:  make([]RouteInfo, 0),
	}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// TrackApps records the installed apps covered by the scan.
func (s *Summary) TrackApps(apps []string) {
	s.apps = append(s.apps, apps...)
}

// TrackRoute records an HTTP route.
func (s *Summary) TrackRoute(method, path, handler string) {
	s.routes = append(s.routes, RouteInfo{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
}

// Routes returns the tracked routes in registration order.
func (s *Summary) Routes() []RouteInfo {
	out := make([]RouteInfo, len(s.routes))
	copy(out, s.routes)
	return out
}

// DisplaySummary prints the bootstrap summary including the container's
// live registration state.
func (s *Summary) DisplaySummary(container *di.Container) {
	// Header
	fmt.Printf("\n")
	fmt.Printf("🚀 %s v%s started in %.2fs\n\n",
		s.appName, s.version, s.startupDuration.Seconds())

	// Installed apps
	if len(s.apps) > 0 {
		fmt.Printf("📦 Installed Apps\n")
		for i, app := range s.apps {
			prefix := "├──"
			if i == len(s.apps)-1 {
				prefix = "└──"
			}
			fmt.Printf("   %s %s\n", prefix, app)
		}
		fmt.Printf("\n")
	}

	// Components
	if container != nil {
		regs := container.Registrations()
		if len(regs) > 0 {
			fmt.Printf("🧩 Components (%d)\n", len(regs))
			for i, reg := range regs {
				prefix := "├──"
				if i == len(regs)-1 {
					prefix = "└──"
				}
				fmt.Printf("   %s %s %s (%s)\n", prefix, registrationIcon(reg), reg.Name, reg.Lifetime)
			}
			fmt.Printf("\n")
		} else {
			fmt.Printf("   └── No components registered\n\n")
		}
	}

	// Routes
	if len(s.routes) > 0 {
		fmt.Printf("🌐 Routes (%d)\n", len(s.routes))
		for i, r := range s.routes {
			prefix := "├──"
			if i == len(s.routes)-1 {
				prefix = "└──"
			}
			fmt.Printf("   %s %-7s %s → %s\n", prefix, r.Method, r.Path, r.Handler)
		}
		fmt.Printf("\n")
	}
}

func registrationIcon(reg di.Registration) string {
	switch {
	case reg.Lifetime == di.Transient:
		return "🔁"
	case reg.Resolved:
		return "✅"
	default:
		return "⚡"
	}
}
