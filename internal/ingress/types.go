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
)

// EnabledAnnotation is the annotation key that opts an Ingress in or out of
// the URL listing. Values "true" and "false" (trimmed, case-insensitive) are
// honored; any other value defers to the process-wide default.
const EnabledAnnotation = "kavorites.koudijs.app/enabled"

// Scanner interface defines the contract for enumerating ingress URLs
// across the cluster
type Scanner interface {
	// Scan lists all namespaces and their Ingress resources and returns the
	// enabled ones as views, in namespace-then-ingress listing order
	Scan(ctx context.Context) ([]IngressView, error)
}

// Status represents the coarse readiness of an Ingress
type Status string

const (
	// StatusReady indicates the Ingress has at least one load-balancer entry
	StatusReady Status = "Ready"
	// StatusPending indicates the Ingress has no load-balancer entry yet
	StatusPending Status = "Pending"
)

// URLRecord is one resolvable URL extracted from an Ingress rule. ServiceName
// and ServicePort are independently optional and serialize as null when the
// rule's backend does not carry them.
type URLRecord struct {
	URL         string  `json:"url"`
	Path        string  `json:"path"`
	ServiceName *string `json:"service_name"`
	ServicePort *int32  `json:"service_port"`
}

// IngressView is the wire representation of one Ingress. URLs, Annotations
// and Labels are never nil so they serialize as [] and {} rather than null.
type IngressView struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	CreationTimestamp *string           `json:"creation_timestamp"`
	URLs              []URLRecord       `json:"urls"`
	Annotations       map[string]string `json:"annotations"`
	Labels            map[string]string `json:"labels"`
	Status            Status            `json:"status"`
}
