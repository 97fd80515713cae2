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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	ctrlzap "sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/koudijs/kavorites/internal/config"
	"github.com/koudijs/kavorites/internal/ingress"
	"github.com/koudijs/kavorites/internal/kube"
	"github.com/koudijs/kavorites/internal/metrics"
	"github.com/koudijs/kavorites/internal/server"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var setupLog = ctrl.Log.WithName("setup")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the kavorites command.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "kavorites",
		Short:        "kavorites serves a cluster-wide view of Kubernetes ingresses",
		Long:         "kavorites scans every namespace for ingresses, keeps the ones enabled by annotation, and serves them as JSON and as an HTML overview page.",
		SilenceUsage: true,
		Version:      version,
	}

	vp := config.NewViper()
	config.RegisterFlags(rootCmd.PersistentFlags())
	_ = vp.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newServeCommand(vp),
		newVersionCommand(),
	)
	rootCmd.SetVersionTemplate("{{with .Name}}{{printf \"%s \" .}}{{end}}{{printf \"v%s\" .Version}}\n")
	return rootCmd
}

// newServeCommand creates the serve command.
func newServeCommand(vp *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the ingress viewer server",
		Long:  `Run the ingress viewer server.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(config.New(vp))
		},
	}
}

// newVersionCommand creates the version command.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("kavorites v%s\n", version)
		},
	}
}

func runServe(cfg config.Config) error {
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	opts := ctrlzap.Options{
		Development: cfg.Debug,
		Level:       level,
		TimeEncoder: zapcore.ISO8601TimeEncoder,
	}
	ctrl.SetLogger(ctrlzap.New(ctrlzap.UseFlagOptions(&opts)))

	ctx := signals.SetupSignalHandler()
	metrics.Register()

	// The server runs with or without cluster credentials. Without them
	// /api/health reports the degraded state and /api/ingresses fails.
	var scanner ingress.Scanner
	clientset, err := kube.NewClientset(kube.DefaultProviders(cfg.Kubeconfig)...)
	if err != nil {
		setupLog.Error(err, "No Kubernetes client available, ingress requests will fail")
	} else {
		scanner = ingress.NewScanner(clientset, cfg.DefaultEnabled)
	}

	setupLog.Info("Starting kavorites",
		"version", version,
		"host", cfg.Host,
		"port", cfg.Port,
		"defaultEnabled", cfg.DefaultEnabled)
	return server.NewServer(cfg.Host, cfg.Port, scanner).Start(ctx)
}
