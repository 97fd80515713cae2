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
	"time"

	networkingv1 "k8s.io/api/networking/v1"
)

// ProjectURLs flattens an Ingress into URL records, one per rule path, in
// rule-then-path order. Rules without a host are skipped. A rule whose host
// is covered by a TLS entry yields https URLs, otherwise http. A path entry
// with an empty path string resolves to "/", and a rule with no path entries
// at all yields exactly one synthetic record for "/". Every record satisfies
// URL == protocol://host + Path.
func ProjectURLs(ing *networkingv1.Ingress) []URLRecord {
	urls := []URLRecord{}

	for _, rule := range ing.Spec.Rules {
		if rule.Host == "" {
			continue
		}

		protocol := "http"
		if hasTLSHost(ing, rule.Host) {
			protocol = "https"
		}
		base := protocol + "://" + rule.Host

		if rule.HTTP == nil || len(rule.HTTP.Paths) == 0 {
			urls = append(urls, URLRecord{
				URL:  base + "/",
				Path: "/",
			})
			continue
		}

		for _, path := range rule.HTTP.Paths {
			pathValue := path.Path
			if pathValue == "" {
				pathValue = "/"
			}

			record := URLRecord{
				URL:  base + pathValue,
				Path: pathValue,
			}
			if svc := path.Backend.Service; svc != nil {
				name := svc.Name
				record.ServiceName = &name
				if svc.Port.Number != 0 {
					port := svc.Port.Number
					record.ServicePort = &port
				}
			}
			urls = append(urls, record)
		}
	}

	return urls
}

// hasTLSHost reports whether any TLS entry covers the given host. Matching
// is exact and case-sensitive.
func hasTLSHost(ing *networkingv1.Ingress, host string) bool {
	for _, tls := range ing.Spec.TLS {
		for _, tlsHost := range tls.Hosts {
			if tlsHost == host {
				return true
			}
		}
	}
	return false
}

// ClassifyStatus derives the readiness of an Ingress from its load-balancer
// status: Ready if at least one load-balancer ingress entry exists, Pending
// otherwise.
func ClassifyStatus(ing *networkingv1.Ingress) Status {
	if len(ing.Status.LoadBalancer.Ingress) > 0 {
		return StatusReady
	}
	return StatusPending
}

// NewIngressView builds the wire representation of one Ingress. Annotation
// and label maps are copied so a view never aliases the source object.
func NewIngressView(ing *networkingv1.Ingress) IngressView {
	view := IngressView{
		Name:        ing.Name,
		Namespace:   ing.Namespace,
		URLs:        ProjectURLs(ing),
		Annotations: map[string]string{},
		Labels:      map[string]string{},
		Status:      ClassifyStatus(ing),
	}

	if !ing.CreationTimestamp.IsZero() {
		created := ing.CreationTimestamp.UTC().Format(time.RFC3339)
		view.CreationTimestamp = &created
	}

	for k, v := range ing.Annotations {
		view.Annotations[k] = v
	}
	for k, v := range ing.Labels {
		view.Labels[k] = v
	}

	return view
}
