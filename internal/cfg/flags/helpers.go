// Package cfgflags binds Cobra flags to Viper keys.
package cfgflags

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bind registers a flag as the highest-precedence source for its Viper key.
func bind(v *viper.Viper, f *pflag.FlagSet, key string) error {
	return v.BindPFlag(key, f.Lookup(key))
}

// bindAll binds a set of same-named flags and keys.
func bindAll(v *viper.Viper, f *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		if err := bind(v, f, key); err != nil {
			return err
		}
	}
	return nil
}
