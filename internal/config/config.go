// Copyright 2026 The Kavorites Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyHost           = "host"
	keyPort           = "port"
	keyDefaultEnabled = "default-enabled"
	keyDebug          = "debug"
	keyKubeconfig     = "kubeconfig"
)

// Config holds the process-wide settings, fixed at startup.
type Config struct {
	// Host is the listen address for the HTTP server
	Host string
	// Port is the listen port for the HTTP server
	Port int
	// DefaultEnabled decides the fate of ingresses without a usable enable
	// annotation
	DefaultEnabled bool
	// Debug switches the logger to development output
	Debug bool
	// Kubeconfig is an explicit kubeconfig path; empty means the default
	// loading rules
	Kubeconfig string
}

// NewViper creates the viper instance backing kavorites configuration. Keys
// resolve from bound flags first, then KAVORITES_-prefixed environment
// variables, then the legacy unprefixed names HOST and PORT, then defaults.
func NewViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvPrefix("kavorites")
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()

	// Environment contract of existing deployments.
	_ = vp.BindEnv(keyHost, "KAVORITES_HOST", "HOST")
	_ = vp.BindEnv(keyPort, "KAVORITES_PORT", "PORT")
	_ = vp.BindEnv(keyDefaultEnabled, "KAVORITES_DEFAULT_ENABLED")
	_ = vp.BindEnv(keyDebug, "KAVORITES_DEBUG")

	vp.SetDefault(keyHost, "0.0.0.0")
	vp.SetDefault(keyPort, 8080)
	vp.SetDefault(keyDefaultEnabled, true)
	vp.SetDefault(keyDebug, false)
	vp.SetDefault(keyKubeconfig, "")

	return vp
}

// RegisterFlags declares the kavorites command-line flags on the given set.
// Bind the set to the viper instance with BindPFlags so set flags take
// precedence over the environment.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(keyHost, "0.0.0.0", "Address to listen on")
	flags.Int(keyPort, 8080, "Port to listen on")
	flags.Bool(keyDefaultEnabled, true, "Include ingresses that carry no enable annotation")
	flags.Bool(keyDebug, false, "Enable debug logging")
	flags.String(keyKubeconfig, "", "Path to a kubeconfig file (empty uses in-cluster credentials, then the standard loading rules)")
}

// New materializes an immutable Config from the viper instance.
func New(vp *viper.Viper) Config {
	return Config{
		Host:           vp.GetString(keyHost),
		Port:           vp.GetInt(keyPort),
		DefaultEnabled: vp.GetBool(keyDefaultEnabled),
		Debug:          vp.GetBool(keyDebug),
		Kubeconfig:     vp.GetString(keyKubeconfig),
	}
}
