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

package kube

import (
	"fmt"
	"strings"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

// inClusterProvider resolves credentials from the pod's service account
type inClusterProvider struct{}

func (inClusterProvider) Name() string { return "in-cluster" }

func (inClusterProvider) Config() (*rest.Config, error) {
	return rest.InClusterConfig()
}

// kubeconfigProvider resolves credentials from a kubeconfig file using the
// default loading rules (the KUBECONFIG environment variable, then the home
// directory file). An explicit path overrides both.
type kubeconfigProvider struct {
	explicitPath string
}

func (kubeconfigProvider) Name() string { return "kubeconfig" }

func (p kubeconfigProvider) Config() (*rest.Config, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	rules.ExplicitPath = p.explicitPath

	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
}

// DefaultProviders returns the standard credential resolution order:
// in-cluster service account first, local kubeconfig second. kubeconfigPath
// may be empty, in which case the kubeconfig provider falls back to the
// default loading rules.
func DefaultProviders(kubeconfigPath string) []ConfigProvider {
	return []ConfigProvider{
		inClusterProvider{},
		kubeconfigProvider{explicitPath: kubeconfigPath},
	}
}

// RESTConfig tries each provider in order and returns the first
// configuration that resolves. When every strategy fails, the returned error
// names each one with its failure.
func RESTConfig(providers ...ConfigProvider) (*rest.Config, error) {
	var failures []string
	for _, provider := range providers {
		cfg, err := provider.Config()
		if err == nil {
			log.Log.Info("Resolved Kubernetes configuration", "strategy", provider.Name())
			return cfg, nil
		}
		failures = append(failures, fmt.Sprintf("%s: %v", provider.Name(), err))
	}

	return nil, fmt.Errorf("no usable kubernetes configuration: %s", strings.Join(failures, "; "))
}

// NewClientset resolves a configuration through the given providers and
// wraps it in a clientset.
func NewClientset(providers ...ConfigProvider) (kubernetes.Interface, error) {
	cfg, err := RESTConfig(providers...)
	if err != nil {
		return nil, err
	}

	client, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return client, nil
}
