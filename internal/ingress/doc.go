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

// Package ingress turns Kubernetes Ingress resources into flat lists of
// resolvable URLs.
//
// # Overview
//
// The package has two halves. The pure half projects a single
// networkingv1.Ingress into URL records (ProjectURLs), classifies its
// readiness from the load-balancer status (ClassifyStatus), assembles the
// wire view (NewIngressView), and decides inclusion from the enable
// annotation (Enabled). The orchestration half (Scanner) walks every
// namespace of a cluster and applies the pure half to each Ingress it finds.
//
// # URL projection
//
// Each Ingress rule with a host contributes one URL per path entry, in input
// order. The protocol is https exactly when a TLS entry lists the rule's
// host (matched case-sensitively), http otherwise. An empty path string
// resolves to "/", and a rule with no path entries contributes a single
// synthetic "/" record. Rules without a host contribute nothing, so an
// Ingress can legitimately project to an empty list.
//
// # Filtering
//
// Inclusion is decided per object by the kavorites.koudijs.app/enabled
// annotation. The scanner's defaultEnabled setting applies when the
// annotation is missing or carries an unrecognized value; "false" always
// excludes and "true" always includes, regardless of the default.
//
// # Failure isolation
//
// Scan fails only when the namespace listing itself fails. A namespace whose
// ingress listing fails is logged and skipped, and the scan continues, so
// callers may receive partial results on a degraded cluster.
//
// # Usage
//
// Create a scanner over a clientset and run it per request:
//
//	scanner := ingress.NewScanner(clientset, true)
//	views, err := scanner.Scan(ctx)
//	if err != nil {
//	    // namespace listing failed, no partial results
//	}
package ingress
