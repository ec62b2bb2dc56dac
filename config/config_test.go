package config

import (
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	if got := ServeAddress(); got != DefaultAddress {
		t.Errorf("ServeAddress() = %q, want %q", got, DefaultAddress)
	}
	if got := WalkBudget(); got != DefaultWalkBudget {
		t.Errorf("WalkBudget() = %d, want %d", got, DefaultWalkBudget)
	}
	if !DisplayEXIF() {
		t.Error("DisplayEXIF() should default to true")
	}
	if !MetricsEnabled() {
		t.Error("MetricsEnabled() should default to true")
	}
	if HasRootDirectory() {
		t.Error("no root directory expected without configuration")
	}
}

func TestLegacyEnvironment(t *testing.T) {
	resetViper(t)
	t.Setenv("ROOT", "/mnt/archive/Images")
	t.Setenv("REF_ROOT", "/mnt/ref/Images")
	t.Setenv("BASE", "slides/")
	SetDefaults()

	if got := RootDirectory(); got != "/mnt/archive/Images" {
		t.Errorf("RootDirectory() = %q", got)
	}
	if got := ServeBase(); got != "/slides" {
		t.Errorf("ServeBase() = %q, want /slides", got)
	}

	collections := Collections()
	if len(collections) != 2 {
		t.Fatalf("Collections() = %+v, want main and ref", collections)
	}
	if collections[1].Name != RefCollectionName || collections[1].Root != "/mnt/ref/Images" {
		t.Errorf("ref collection = %+v", collections[1])
	}
}

func TestPrefixedEnvironmentWins(t *testing.T) {
	resetViper(t)
	t.Setenv("ROOT", "/legacy")
	t.Setenv("DIASHOW_ROOT_DIRECTORY", "/prefixed")
	t.Setenv("DIASHOW_WALK_BUDGET", "12")
	SetDefaults()

	if got := RootDirectory(); got != "/prefixed" {
		t.Errorf("RootDirectory() = %q, want /prefixed", got)
	}
	if got := WalkBudget(); got != 12 {
		t.Errorf("WalkBudget() = %d, want 12", got)
	}
}

func TestWalkBudgetRejectsNonPositive(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set(KeyWalkBudget, -3)

	if got := WalkBudget(); got != DefaultWalkBudget {
		t.Errorf("WalkBudget() = %d, want default", got)
	}
}

func TestCollectionByName(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set(KeyRootDirectory, "/main")

	if c, ok := CollectionByName(""); !ok || c.Root != "/main" {
		t.Errorf("main collection = %+v, %v", c, ok)
	}
	if _, ok := CollectionByName(RefCollectionName); ok {
		t.Error("ref collection must be absent without ref.directory")
	}
}
