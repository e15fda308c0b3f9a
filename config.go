package main

import (
	"flag"
	"fmt"
	"math"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/robertof/go-factory-demos/device"
	"github.com/robertof/go-factory-demos/device/philips"
	"github.com/robertof/go-factory-demos/device/samsung"
	"github.com/robertof/go-factory-demos/document"
)

const envPrefix = "FACTORY_"

type config struct {
	Debug, Trace bool
	BindAddress  string
	ConfigFile   string
	ListFamilies bool
	FanSpeed     device.FanSpeed
	Parallelism  int
	Devices      []deviceEntry
	Documents    []document.Source
}

// deviceEntry selects a device family and the vendor configuration its factory is built with.
type deviceEntry struct {
	Family string
	Config device.Config
}

func (d deviceEntry) String() string {
	return strings.ToLower(d.Family) + ":" + d.Config.String()
}

var deviceFamilies = []device.Family{
	&samsung.Family{},
	&philips.Family{},
}

var defaultDevices = []deviceEntry{
	{
		Family: samsung.FamilyName,
		Config: device.Config{Brand: samsung.FamilyName, Addr: netip.IPv6Loopback(), Port: 3000},
	},
	{
		Family: philips.FamilyName,
		Config: device.Config{Brand: philips.FamilyName, Addr: netip.MustParseAddr("::1:1"), Port: 8080},
	},
}

var defaultDocuments = []document.Source{
	{Path: "data/data.json", Type: document.TypeJSON},
	{Path: "data/data.csv", Type: document.TypeCSV},
}

type boundDeviceList struct {
	device.Family
	list *[]deviceEntry
}

func (d *boundDeviceList) String() string {
	return ""
}

func (d *boundDeviceList) Set(v string) error {
	cfg, err := device.NewDeviceSpec(v).Config(d.Name())
	if err != nil {
		return fmt.Errorf("failed to create device config: %w", err)
	}

	*d.list = append(*d.list, deviceEntry{Family: d.Name(), Config: cfg})

	return nil
}

type boundDocumentList struct {
	document.Type
	list *[]document.Source
}

func (d *boundDocumentList) String() string {
	return ""
}

func (d *boundDocumentList) Set(v string) error {
	if v == "" {
		return fmt.Errorf("document path is required")
	}

	*d.list = append(*d.list, document.Source{Path: v, Type: d.Type})

	return nil
}

func newDeviceRegistry() (*device.Registry, error) {
	return device.NewRegistry(deviceFamilies...)
}

func ParseArgs(registry *device.Registry) config {
	cfg, err := parseArgs(flag.CommandLine, os.Args[1:], registry)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		flag.Usage()
		os.Exit(1)
	}

	return cfg
}

func parseArgs(fs *flag.FlagSet, args []string, registry *device.Registry) (config, error) {
	var cfg config

	cfg.FanSpeed = device.FanSpeed4

	fs.StringVar(&cfg.BindAddress, "bind", "", "Serve Prometheus metrics on this address once the demos are done")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Optional YAML or JSON configuration file")
	fs.BoolVar(&cfg.ListFamilies, "list", false, "List the supported device families and document types and quit")
	fs.Var(&cfg.FanSpeed, "fan-speed", "Speed (0-5) the fans are switched to during the device demo")
	fs.IntVar(&cfg.Parallelism, "parallel", 1, "Max number of documents read at the same time")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logs")
	fs.BoolVar(&cfg.Trace, "trace", false, "Enable trace logs")

	for _, family := range registry.Families() {
		boundList := boundDeviceList{
			Family: family,
			list:   &cfg.Devices,
		}

		help := "Device family config in the form of `key=value,key=value`."

		if docs, ok := family.(device.FamilyDocs); ok {
			help += "\n" + docs.Help()
		}

		fs.Var(&boundList, strings.ToLower(family.Name()), help)
	}

	for _, t := range document.Types {
		boundList := boundDocumentList{
			Type: t,
			list: &cfg.Documents,
		}

		fs.Var(&boundList, t.String(), fmt.Sprintf("Path of a %s document to read", strings.ToUpper(t.String())))
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	fc, err := loadConfig(cfg.ConfigFile)
	if err != nil {
		return cfg, err
	}

	if err := fc.apply(&cfg, setFlags(fs)); err != nil {
		if cfg.ConfigFile == "" {
			return cfg, fmt.Errorf("%s* environment: %w", envPrefix, err)
		}

		return cfg, fmt.Errorf("%s: %w", cfg.ConfigFile, err)
	}

	if len(cfg.Devices) == 0 {
		cfg.Devices = append(cfg.Devices, defaultDevices...)
	}

	if len(cfg.Documents) == 0 {
		cfg.Documents = append(cfg.Documents, defaultDocuments...)
	}

	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}

	return cfg, nil
}

func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)

	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	return set
}

type fileConfig struct {
	Debug       bool   `json:"debug"`
	Trace       bool   `json:"trace"`
	Bind        string `json:"bind"`
	FanSpeed    *int   `json:"fan_speed"`
	Parallelism int    `json:"parallelism"`

	Devices []struct {
		Family string `json:"family"`
		Brand  string `json:"brand"`
		Addr   string `json:"addr"`
		Port   int    `json:"port"`
	} `json:"devices"`

	Documents []struct {
		Path string `json:"path"`
		Type string `json:"type"`
	} `json:"documents"`
}

// loadConfig reads the optional config file at path, then applies overrides from
// FACTORY_* environment variables (FACTORY_FAN_SPEED=2 sets fan_speed). The environment
// is read even when there is no file.
func loadConfig(path string) (*fileConfig, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %q", ext)
		}

		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var fc fileConfig
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &fc, nil
}

// apply merges the file and environment into cfg. Flags explicitly set on the command line take
// precedence, and the file's lists are only used when no list was given as flags.
func (fc *fileConfig) apply(cfg *config, set map[string]bool) error {
	if !set["debug"] {
		cfg.Debug = fc.Debug
	}

	if !set["trace"] {
		cfg.Trace = fc.Trace
	}

	if !set["bind"] && fc.Bind != "" {
		cfg.BindAddress = fc.Bind
	}

	if !set["parallel"] && fc.Parallelism != 0 {
		cfg.Parallelism = fc.Parallelism
	}

	if !set["fan-speed"] && fc.FanSpeed != nil {
		if *fc.FanSpeed < int(device.FanSpeed0) || *fc.FanSpeed > int(device.FanSpeed5) {
			return fmt.Errorf("%w: %d", device.ErrInvalidFanSpeed, *fc.FanSpeed)
		}

		cfg.FanSpeed = device.FanSpeed(*fc.FanSpeed)
	}

	if len(cfg.Devices) == 0 {
		for _, d := range fc.Devices {
			// 0 is left for Config.Validate to report as missing.
			if d.Port < 0 || d.Port > math.MaxUint16 {
				return fmt.Errorf("%w: device %q: port %d out of range", device.ErrInvalidConfig, d.Family, d.Port)
			}

			entry := deviceEntry{
				Family: d.Family,
				Config: device.Config{Brand: d.Brand, Port: uint16(d.Port)},
			}

			if d.Addr != "" {
				addr, err := netip.ParseAddr(d.Addr)
				if err != nil {
					return fmt.Errorf("%w: device %q: %w", device.ErrInvalidConfig, d.Family, err)
				}

				entry.Config.Addr = addr
			}

			cfg.Devices = append(cfg.Devices, entry)
		}
	}

	if len(cfg.Documents) == 0 {
		for _, d := range fc.Documents {
			var t document.Type
			var err error

			if d.Type != "" {
				t, err = document.ParseType(d.Type)
			} else {
				t, err = document.TypeFromPath(d.Path)
			}

			if err != nil {
				return err
			}

			cfg.Documents = append(cfg.Documents, document.Source{Path: d.Path, Type: t})
		}
	}

	return nil
}
