package cli

import (
	"strings"
	"time"

	"tzconv/internal/platform/config"
	"tzconv/internal/platform/config/raw"
	perr "tzconv/internal/platform/errors"
	"tzconv/internal/platform/net/http/bind"
	"tzconv/internal/services/convert/present"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Settings are the resolved knobs of one invocation
// flags win over TZCONV_* env vars, which win over the config file
type Settings struct {
	StrictExit         bool     `json:"strict_exit"`
	Color              string   `json:"color"        validate:"oneof=auto always never"`
	CurrentYearDefault bool     `json:"current_year_default"`
	Extended           bool     `json:"extended_abbreviations"`
	LocalZone          string   `json:"local_zone"   validate:"omitempty,max=64"`
	HTTPAddr           string   `json:"http_addr"    validate:"required,listen_addr"`
	CORSOrigins        []string `json:"cors_origins" validate:"dive,url|eq=*"`
	Verbose            int      `json:"verbose"`

	// Local is LocalZone loaded, nil when unset
	Local *time.Location `json:"-"`
}

// flag name -> env key under config.AppPrefix
var flagKeys = map[string]string{
	"strict-exit":            "STRICT_EXIT",
	"color":                  "COLOR",
	"current-year-default":   "CURRENT_YEAR_DEFAULT",
	"extended-abbreviations": "EXTENDED_ABBREVIATIONS",
	"local-zone":             "LOCAL_ZONE",
}

// bindFlags copies configured values onto flags the user did not set
func bindFlags(cmd *cobra.Command, app config.Conf) error {
	var firstErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || f.Changed {
			return
		}
		v, ok := app.Lookup(key)
		if !ok {
			return
		}
		if err := cmd.Flags().Set(f.Name, v); err != nil && firstErr == nil {
			firstErr = perr.WithField(perr.InvalidArgf("%s%s=%q: %v", config.AppPrefix, key, v, err), f.Name)
		}
	})
	return firstErr
}

// loadSettings reads flags after bindFlags ran, adds the HTTP view and validates
func loadSettings(cmd *cobra.Command, app config.Conf) (Settings, error) {
	fs := cmd.Flags()
	var st Settings
	st.StrictExit, _ = fs.GetBool("strict-exit")
	st.Color, _ = fs.GetString("color")
	st.CurrentYearDefault, _ = fs.GetBool("current-year-default")
	st.Extended, _ = fs.GetBool("extended-abbreviations")
	st.LocalZone, _ = fs.GetString("local-zone")
	st.Verbose, _ = fs.GetCount("verbose")

	st.Color = strings.ToLower(strings.TrimSpace(st.Color))
	_, configured := app.Lookup("COLOR")
	if st.Color == string(present.ColorAuto) && !fs.Changed("color") && !configured && raw.New().Has("NO_COLOR") {
		st.Color = string(present.ColorNever)
	}

	http := app.Prefix("HTTP_")
	st.HTTPAddr = http.MayString("ADDR", ":4000")
	st.CORSOrigins = http.MayCSV("CORS_ORIGINS", nil)

	if err := bind.Validate(st); err != nil {
		return st, err
	}

	if st.LocalZone != "" {
		loc, err := time.LoadLocation(st.LocalZone)
		if err != nil {
			return st, perr.WithField(perr.InvalidArgf("local zone %q: %v", st.LocalZone, err), "local_zone")
		}
		st.Local = loc
	}
	return st, nil
}
