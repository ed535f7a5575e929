package api

import (
	"errors"
	"fmt"
	"github.com/alvinbaena/pwd-analyst/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"reflect"
	"strings"
)

type Config struct {
	Port      uint16 `mapstructure:"PORT" validate:"required"`
	SelfTLS   bool   `mapstructure:"SELF_TLS" validate:"required_without_all=TLSCert TLSKey"`
	TLSCert   string `mapstructure:"TLS_CERT" validate:"required_if=SelfTLS false,required_with=TLSKey"`
	TLSKey    string `mapstructure:"TLS_KEY" validate:"required_if=SelfTLS false,required_with=TLSCert"`
	CacheSize int64  `mapstructure:"CACHE_SIZE" validate:"gte=0"`
	Debug     bool   `mapstructure:"DEBUG"`
}

// flagKeys maps serve command flags to the env keys they override.
var flagKeys = map[string]string{
	"port":       "PORT",
	"self-tls":   "SELF_TLS",
	"tls-cert":   "TLS_CERT",
	"tls-key":    "TLS_KEY",
	"cache-size": "CACHE_SIZE",
}

func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		f := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch f.Kind() {
		case reflect.Struct:
			bindEnvs(v, f.Interface(), append(parts, tv)...)
		default:
			_ = v.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_without_all":
		return fmt.Sprintf("This field is required if fields [%s] are missing", util.ToScreamingSnakeCase(fe.Param()))
	case "required_if":
		return fmt.Sprintf("This field is required if %s", util.ToScreamingSnakeCase(fe.Param()))
	case "required_with":
		return fmt.Sprintf("This is field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	case "gte":
		return fmt.Sprintf("This field must be at least %s", fe.Param())
	}
	return fe.Error() // default error
}

// LoadConfig reads the server configuration from the environment. Flags that
// were set explicitly on the command line win over the environment; flags
// may be nil.
func LoadConfig(flags *pflag.FlagSet) (config Config, err error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("PORT", 3100)
	v.SetDefault("CACHE_SIZE", 10_000)

	// Binding every key is what lets Unmarshal see env vars without a config file
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	config = Config{}
	bindEnvs(v, config)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err = v.BindPFlag(key, f); err != nil {
					return
				}
			}
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	validate := validator.New()
	if err = validate.Struct(&config); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
			}

			err = errors.New(strings.Join(msgs, ". "))
		}
	}

	return
}
