package config

import (
	"strings"

	"github.com/spf13/viper"
)

var (
	KeyRootDirectory  = "root.directory"
	KeyRefDirectory   = "ref.directory"
	KeyServeBase      = "serve.base"
	KeyServeAddress   = "serve.address"
	KeyServeResources = "serve.resources"
	KeyWalkBudget     = "walk.budget"
	KeyDisplayLocale  = "display.locale"
	KeyDisplayEXIF    = "display.exif"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyLogFile        = "log.file"
	KeyMetricsEnabled = "metrics.enabled"
	KeyToolsViewer    = "tools.viewer"
)

const (
	EnvPrefix = "diashow"

	MainCollectionName = ""
	RefCollectionName  = "ref"

	DefaultAddress       = ":8000"
	DefaultWalkBudget    = 100
	DefaultDisplayLocale = "en_US"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
)

// Environment variables read in addition to the DIASHOW_ prefixed ones.
var legacyEnvironmentKeys = map[string]string{
	KeyRootDirectory: "ROOT",
	KeyRefDirectory:  "REF_ROOT",
	KeyServeBase:     "BASE",
}

// SetDefaults installs the default configuration and the environment
// bindings. Besides DIASHOW_* variables the plain ROOT, REF_ROOT and BASE
// variables are honoured.
func SetDefaults() {
	viper.SetDefault(KeyServeAddress, DefaultAddress)
	viper.SetDefault(KeyServeBase, "")
	viper.SetDefault(KeyWalkBudget, DefaultWalkBudget)
	viper.SetDefault(KeyDisplayLocale, DefaultDisplayLocale)
	viper.SetDefault(KeyDisplayEXIF, true)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyLogFormat, DefaultLogFormat)
	viper.SetDefault(KeyMetricsEnabled, true)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, legacy := range legacyEnvironmentKeys {
		envName := strings.ToUpper(EnvPrefix + "_" + strings.ReplaceAll(key, ".", "_"))
		_ = viper.BindEnv(key, envName, legacy)
	}
}

func HasRootDirectory() bool {
	return viper.GetString(KeyRootDirectory) != ""
}

func RootDirectory() string {
	return viper.GetString(KeyRootDirectory)
}

func RefDirectory() string {
	return viper.GetString(KeyRefDirectory)
}

// ServeBase returns the URL path prefix without a trailing slash.
func ServeBase() string {
	base := strings.TrimRight(viper.GetString(KeyServeBase), "/")
	if base != "" && !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}

func ServeAddress() string {
	return viper.GetString(KeyServeAddress)
}

func ServeResources() string {
	return viper.GetString(KeyServeResources)
}

func WalkBudget() int {
	budget := viper.GetInt(KeyWalkBudget)
	if budget <= 0 {
		return DefaultWalkBudget
	}
	return budget
}

func DisplayLocale() string {
	return viper.GetString(KeyDisplayLocale)
}

func DisplayEXIF() bool {
	return viper.GetBool(KeyDisplayEXIF)
}

func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

func LogFormat() string {
	return viper.GetString(KeyLogFormat)
}

func LogFile() string {
	return viper.GetString(KeyLogFile)
}

func MetricsEnabled() bool {
	return viper.GetBool(KeyMetricsEnabled)
}

func HasToolsViewer() bool {
	return viper.IsSet(KeyToolsViewer)
}

func ToolsViewer() string {
	return viper.GetString(KeyToolsViewer)
}

// Collection is an image tree served below a name.
type Collection struct {
	Name string
	Root string
}

// Collections returns the main collection and, if configured, the
// reference collection.
func Collections() []Collection {
	collections := []Collection{
		{Name: MainCollectionName, Root: RootDirectory()},
	}

	if ref := RefDirectory(); ref != "" {
		collections = append(collections, Collection{Name: RefCollectionName, Root: ref})
	}

	return collections
}

// CollectionByName returns the collection called name.
func CollectionByName(name string) (Collection, bool) {
	for _, c := range Collections() {
		if c.Name == name {
			return c, true
		}
	}

	return Collection{}, false
}
