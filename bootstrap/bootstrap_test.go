package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/turbokit/component"
	"github.com/kbukum/turbokit/config"
	"github.com/kbukum/turbokit/di"
	apperrors "github.com/kbukum/turbokit/errors"
)

type homeService struct {
	greeting string
}

func newHomeService() *homeService {
	return &homeService{greeting: "hello"}
}

func demoConfig() *config.Config {
	return config.New("demo", "1.0.0", "apps.home")
}

func demoIndex() *component.Index {
	ix := component.NewIndex()
	ix.Register(component.NewModule("apps.home",
		component.Class("HomeService", newHomeService),
	))
	return ix
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(&config.Config{})
	if err == nil {
		t.Fatal("expected error for config without a project name")
	}
}

func TestNew_Defaults(t *testing.T) {
	app, err := New(config.New("demo", "", "apps.home"), WithIndex(demoIndex()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if app.Name != "demo" {
		t.Errorf("expected name 'demo', got %q", app.Name)
	}
	if app.Version != "0.1.0" {
		t.Errorf("expected default version '0.1.0', got %q", app.Version)
	}
	if app.Initialized() {
		t.Error("expected app to start uninitialized")
	}
}

func TestInitialize_RegistersCore(t *testing.T) {
	cfg := demoConfig()
	app, err := New(cfg, WithIndex(demoIndex()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := app.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	for _, name := range []string{di.Core.Config, di.Core.Scanner, di.Core.Container} {
		if !app.Container.IsRegistered(name) {
			t.Errorf("expected %q to be registered", name)
		}
	}

	gotCfg, err := app.Container.Resolve(di.Core.Config)
	if err != nil {
		t.Fatalf("Resolve config failed: %v", err)
	}
	if gotCfg != cfg {
		t.Error("expected the exact config instance")
	}

	gotContainer, _ := app.Container.Resolve(di.Core.Container)
	if gotContainer != app.Container {
		t.Error("expected the container to resolve itself")
	}
}

func TestInitialize_RegistersDiscovered(t *testing.T) {
	app, err := New(demoConfig(), WithIndex(demoIndex()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := app.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if !app.Container.IsRegistered("apps.home.HomeService") {
		t.Fatalf("expected derived name registration, have %v", app.Container.Names())
	}

	first, err := app.Container.Resolve("apps.home.HomeService")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	svc, ok := first.(*homeService)
	if !ok {
		t.Fatalf("expected *homeService, got %T", first)
	}
	if svc.greeting != "hello" {
		t.Errorf("expected constructed instance, got %+v", svc)
	}

	second, _ := app.Container.Resolve("apps.home.HomeService")
	if second != first {
		t.Error("expected discovered components to be singletons")
	}
}

func TestInitialize_FunctionComponent(t *testing.T) {
	calls := 0
	ix := component.NewIndex()
	ix.Register(component.NewModule("apps.metrics",
		component.Func("report_total", func() int {
			calls++
			return calls
		}),
	))

	app, err := New(config.New("demo", "1.0.0", "apps.metrics"), WithIndex(ix))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := app.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	first, err := app.Container.Resolve("apps.metrics.report_total")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if first != 1 {
		t.Errorf("expected function invocation result 1, got %v", first)
	}

	// Singleton: the function runs once, the result is cached.
	second, _ := app.Container.Resolve("apps.metrics.report_total")
	if second != 1 || calls != 1 {
		t.Errorf("expected cached result, got %v after %d calls", second, calls)
	}
}

func TestInitialize_Twice(t *testing.T) {
	app, err := New(demoConfig(), WithIndex(demoIndex()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := app.Initialize(); err != nil {
		t.Fatalf("first Initialize failed: %v", err)
	}
	before := len(app.Container.Names())

	if err := app.Initialize(); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}
	if after := len(app.Container.Names()); after != before {
		t.Errorf("expected second Initialize to change nothing, %d -> %d", before, after)
	}
}

func TestInitialize_DuplicateFails(t *testing.T) {
	container := di.New()
	container.RegisterValue("apps.home.HomeService", "already here")

	app, err := New(demoConfig(), WithIndex(demoIndex()), WithContainer(container))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = app.Initialize()
	if err == nil {
		t.Fatal("expected duplicate registration to abort initialization")
	}
	if !apperrors.IsCode(err, apperrors.ErrCodeDuplicateComponent) {
		t.Errorf("expected duplicate component code, got %v", apperrors.CodeOf(err))
	}
	if app.Initialized() {
		t.Error("expected app to stay uninitialized after failure")
	}
}

func TestInitialize_LeavesScanMemoUntouched(t *testing.T) {
	app, err := New(demoConfig(), WithIndex(demoIndex()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := app.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// Bootstrap discovery must not consume the caller's first scan.
	if got := app.Scanner.ScanInstalledApps(); len(got) == 0 {
		t.Error("expected the first explicit scan to see all components")
	}
}

func TestComponent_AutoInitializes(t *testing.T) {
	app, err := New(demoConfig(), WithIndex(demoIndex()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	val, err := app.Component(di.Core.Config)
	if err != nil {
		t.Fatalf("Component failed: %v", err)
	}
	if val != app.Cfg {
		t.Error("expected the config instance")
	}
	if !app.Initialized() {
		t.Error("expected Component to initialize the app")
	}
}

func TestComponentTyped(t *testing.T) {
	app, err := New(demoConfig(), WithIndex(demoIndex()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	val, err := app.ComponentTyped("apps.home.HomeService", reflect.TypeOf(&homeService{}))
	if err != nil {
		t.Fatalf("ComponentTyped failed: %v", err)
	}
	if _, ok := val.(*homeService); !ok {
		t.Errorf("expected *homeService, got %T", val)
	}

	_, err = app.ComponentTyped("apps.home.HomeService", reflect.TypeOf(42))
	if !apperrors.IsCode(err, apperrors.ErrCodeTypeMismatch) {
		t.Errorf("expected type mismatch code, got %v", apperrors.CodeOf(err))
	}
}

func TestResolve_ConstructorWithArgs(t *testing.T) {
	ix := component.NewIndex()
	ix.Register(component.NewModule("apps.bad",
		component.Class("NeedsArgs", func(dsn string) *homeService {
			return &homeService{greeting: dsn}
		}),
	))

	app, err := New(config.New("demo", "1.0.0", "apps.bad"), WithIndex(ix))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := app.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	_, err = app.Container.Resolve("apps.bad.NeedsArgs")
	if err == nil {
		t.Fatal("expected resolution to fail for constructor with arguments")
	}
	if !apperrors.IsCode(err, apperrors.ErrCodeConstructionFailed) {
		t.Errorf("expected construction failed code, got %v", apperrors.CodeOf(err))
	}
}

func TestResolve_FactoryError(t *testing.T) {
	cause := fmt.Errorf("boom")
	ix := component.NewIndex()
	ix.Register(component.NewModule("apps.flaky",
		component.Class("Flaky", func() (*homeService, error) {
			return nil, cause
		}),
	))

	app, err := New(config.New("demo", "1.0.0", "apps.flaky"), WithIndex(ix))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := app.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	_, err = app.Container.Resolve("apps.flaky.Flaky")
	if !apperrors.IsCode(err, apperrors.ErrCodeConstructionFailed) {
		t.Fatalf("expected construction failed code, got %v", apperrors.CodeOf(err))
	}
	if !errors.Is(err, cause) {
		t.Error("expected the factory cause to be preserved")
	}
}

func TestComponentName(t *testing.T) {
	c := component.Func("send_report", func() {})
	if got := ComponentName(c); got != "send_report" {
		t.Errorf("expected bare name without module, got %q", got)
	}

	component.NewModule("apps.home", c)
	if got := ComponentName(c); got != "apps.home.send_report" {
		t.Errorf("expected module-qualified name, got %q", got)
	}

	anon := &component.Component{}
	got := ComponentName(anon)
	if !strings.HasPrefix(got, "component_") || len(got) != len("component_")+8 {
		t.Errorf("expected generated placeholder name, got %q", got)
	}
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "turbo.toml")
	content := `[project]
name = "filedemo"
version = "1.2.3"

[turbo]
installed_apps = ["apps.home"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	app, err := NewFromFile(path, WithIndex(demoIndex()))
	if err != nil {
		t.Fatalf("NewFromFile failed: %v", err)
	}
	if app.Name != "filedemo" || app.Version != "1.2.3" {
		t.Errorf("unexpected identity: %s v%s", app.Name, app.Version)
	}
	if got := app.Scanner.Apps(); len(got) != 1 || got[0] != "apps.home" {
		t.Errorf("unexpected apps: %v", got)
	}
}

func TestNewFromFile_Missing(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestSummary(t *testing.T) {
	s := NewSummary("demo", "1.0.0")
	s.TrackApps([]string{"apps.home"})
	s.TrackRoute("GET", "/home/", "HomeController.Index")

	routes := s.Routes()
	if len(routes) != 1 || routes[0].Method != "GET" || routes[0].Path != "/home/" {
		t.Fatalf("unexpected routes: %v", routes)
	}
	routes[0].Method = "POST"
	if s.Routes()[0].Method != "GET" {
		t.Error("expected Routes to return a copy")
	}

	// Rendering must tolerate any registration state.
	c := di.New()
	c.RegisterValue("config", struct{}{})
	c.RegisterSingleton("lazy", func() (any, error) { return 1, nil })
	c.RegisterTransient("fresh", func() (any, error) { return 2, nil })
	s.SetStartupDuration(1500 * time.Millisecond)
	s.DisplaySummary(c)
	s.DisplaySummary(nil)
}
