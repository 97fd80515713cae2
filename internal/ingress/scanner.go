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

package ingress

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/koudijs/kavorites/internal/metrics"
)

// clusterScanner implements the Scanner interface over a live clientset
type clusterScanner struct {
	client         kubernetes.Interface
	defaultEnabled bool
}

// NewScanner creates a scanner that enumerates Ingress resources across all
// namespaces of the cluster behind the given client. defaultEnabled decides
// the fate of objects that carry no usable enable annotation and is fixed
// for the scanner's lifetime.
func NewScanner(client kubernetes.Interface, defaultEnabled bool) Scanner {
	return &clusterScanner{
		client:         client,
		defaultEnabled: defaultEnabled,
	}
}

// Scan walks every namespace and collects views of the enabled Ingresses.
// A failure to list namespaces fails the scan; a failure to list the
// Ingresses of a single namespace skips that namespace only, so partial
// results are expected on a degraded cluster.
func (s *clusterScanner) Scan(ctx context.Context) ([]IngressView, error) {
	logger := log.FromContext(ctx)
	metrics.ScansTotal.Inc()

	namespaces, err := s.client.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		metrics.ScanFailuresTotal.Inc()
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	views := []IngressView{}
	for _, ns := range namespaces.Items {
		ingresses, err := s.client.NetworkingV1().Ingresses(ns.Name).List(ctx, metav1.ListOptions{})
		if err != nil {
			metrics.NamespaceSkipsTotal.Inc()
			logger.Error(err, "Failed to list ingresses, skipping namespace", "namespace", ns.Name)
			continue
		}

		for i := range ingresses.Items {
			view := NewIngressView(&ingresses.Items[i])
			if !Enabled(view.Annotations, s.defaultEnabled) {
				continue
			}
			views = append(views, view)
		}
	}

	logger.V(1).Info("Completed ingress scan", "namespaces", len(namespaces.Items), "ingresses", len(views))
	return views, nil
}
