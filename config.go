package abcors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Configuration keys, as found in the settings file.
const (
	KeyDisplayWidth  = "displayWidth"
	KeyDisplayHeight = "displayHeight"
	KeyAllowTarget   = "allowTarget"
	KeyShowTime      = "showTime"
	KeyShowAltitude  = "showAltitude"
	KeyShowSpeed     = "showSpeed"
	KeyShowAngle     = "showAngleToPrograde"
	KeyKerbinTime    = "kerbinTime"
	KeyLocale        = "locale"
	KeyTargetColor   = "targetColor"
)

// DisplayConfig is the configuration of the panel, loaded once per session.
type DisplayConfig struct {
	PanelWidth       int
	PanelHeight      int
	AllowTargetHover bool
	ShowTime         bool
	ShowAltitude     bool
	ShowSpeed        bool
	ShowAngle        bool
	KerbinTime       bool   // six hour days when set, 24 hour days otherwise
	Locale           string // BCP 47 tag of the host culture
	TargetColor      string // hex colour of the text for target hits
}

// DefaultDisplayConfig returns the documented defaults.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		PanelWidth:       160,
		PanelHeight:      160,
		AllowTargetHover: true,
		ShowTime:         true,
		ShowAltitude:     true,
		ShowSpeed:        false,
		ShowAngle:        false,
		KerbinTime:       true,
		Locale:           "",
		TargetColor:      "#ffb000",
	}
}

// Calendar returns the calendar durations are printed with.
func (c DisplayConfig) Calendar() Calendar {
	if c.KerbinTime {
		return KerbinCalendar
	}
	return EarthCalendar
}

// TargetRGB returns the parsed target colour.
func (c DisplayConfig) TargetRGB() colorful.Color {
	col, err := colorful.Hex(c.TargetColor)
	if err != nil {
		col, _ = colorful.Hex(DefaultDisplayConfig().TargetColor)
	}
	return col
}

// displayFile is the layout of the settings file, keys spelled as documented.
type displayFile struct {
	DisplayWidth  int    `toml:"displayWidth"`
	DisplayHeight int    `toml:"displayHeight"`
	AllowTarget   bool   `toml:"allowTarget"`
	ShowTime      bool   `toml:"showTime"`
	ShowAltitude  bool   `toml:"showAltitude"`
	ShowSpeed     bool   `toml:"showSpeed"`
	ShowAngle     bool   `toml:"showAngleToPrograde"`
	KerbinTime    bool   `toml:"kerbinTime"`
	Locale        string `toml:"locale"`
	TargetColor   string `toml:"targetColor"`
}

func (c DisplayConfig) file() displayFile {
	return displayFile{
		DisplayWidth:  c.PanelWidth,
		DisplayHeight: c.PanelHeight,
		AllowTarget:   c.AllowTargetHover,
		ShowTime:      c.ShowTime,
		ShowAltitude:  c.ShowAltitude,
		ShowSpeed:     c.ShowSpeed,
		ShowAngle:     c.ShowAngle,
		KerbinTime:    c.KerbinTime,
		Locale:        c.Locale,
		TargetColor:   c.TargetColor,
	}
}

func (c DisplayConfig) values() map[string]interface{} {
	return map[string]interface{}{
		KeyDisplayWidth:  c.PanelWidth,
		KeyDisplayHeight: c.PanelHeight,
		KeyAllowTarget:   c.AllowTargetHover,
		KeyShowTime:      c.ShowTime,
		KeyShowAltitude:  c.ShowAltitude,
		KeyShowSpeed:     c.ShowSpeed,
		KeyShowAngle:     c.ShowAngle,
		KeyKerbinTime:    c.KerbinTime,
		KeyLocale:        c.Locale,
		KeyTargetColor:   c.TargetColor,
	}
}

// LoadDisplayConfig reads the configuration at path (TOML, the extension is added if missing).
// Missing and malformed values fall back to their defaults, and the normalized configuration is
// written back so that the file lists every key. A file which cannot be read or parsed is left
// untouched and the defaults are used. The returned configuration is always usable; the error
// reports a file that could not be read or written back.
func LoadDisplayConfig(path string, logger log.Logger) (DisplayConfig, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger = log.With(logger, "subsys", "config")
	if filepath.Ext(path) == "" {
		path += ".toml"
	}

	def := DefaultDisplayConfig()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	for key, val := range def.values() {
		v.SetDefault(key, val)
	}
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			level.Warn(logger).Log("message", "unreadable, using defaults", "path", path, "err", err)
			return def, fmt.Errorf("read %s: %w", path, err)
		}
		level.Info(logger).Log("message", "using defaults", "path", path)
	}

	cfg := DisplayConfig{
		PanelWidth:       positiveIntOr(v, KeyDisplayWidth, def.PanelWidth, logger),
		PanelHeight:      positiveIntOr(v, KeyDisplayHeight, def.PanelHeight, logger),
		AllowTargetHover: boolOr(v, KeyAllowTarget, def.AllowTargetHover, logger),
		ShowTime:         boolOr(v, KeyShowTime, def.ShowTime, logger),
		ShowAltitude:     boolOr(v, KeyShowAltitude, def.ShowAltitude, logger),
		ShowSpeed:        boolOr(v, KeyShowSpeed, def.ShowSpeed, logger),
		ShowAngle:        boolOr(v, KeyShowAngle, def.ShowAngle, logger),
		KerbinTime:       boolOr(v, KeyKerbinTime, def.KerbinTime, logger),
		Locale:           stringOr(v, KeyLocale, def.Locale, logger),
		TargetColor:      stringOr(v, KeyTargetColor, def.TargetColor, logger),
	}
	if _, err := colorful.Hex(cfg.TargetColor); err != nil {
		level.Warn(logger).Log("key", KeyTargetColor, "value", cfg.TargetColor, "err", err)
		cfg.TargetColor = def.TargetColor
	}

	data, err := toml.Marshal(cfg.file())
	if err != nil {
		return cfg, fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		level.Warn(logger).Log("message", "could not save", "path", path, "err", err)
		return cfg, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		level.Warn(logger).Log("message", "could not save", "path", path, "err", err)
		return cfg, fmt.Errorf("save %s: %w", path, err)
	}
	level.Debug(logger).Log("message", "loaded", "path", path, "config", fmt.Sprintf("%+v", cfg))
	return cfg, nil
}

func positiveIntOr(v *viper.Viper, key string, def int, logger log.Logger) int {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil || n <= 0 {
		level.Warn(logger).Log("key", key, "value", fmt.Sprint(v.Get(key)), "default", def)
		return def
	}
	return n
}

func boolOr(v *viper.Viper, key string, def bool, logger log.Logger) bool {
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		level.Warn(logger).Log("key", key, "value", fmt.Sprint(v.Get(key)), "default", def)
		return def
	}
	return b
}

func stringOr(v *viper.Viper, key string, def string, logger log.Logger) string {
	s, err := cast.ToStringE(v.Get(key))
	if err != nil {
		level.Warn(logger).Log("key", key, "value", fmt.Sprint(v.Get(key)), "default", def)
		return def
	}
	return s
}
