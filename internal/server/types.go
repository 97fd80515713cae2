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

package server

import (
	"github.com/koudijs/kavorites/internal/ingress"
)

// IngressListResponse is the success body of GET /api/ingresses
type IngressListResponse struct {
	// Ingresses holds the enabled ingresses in scan order
	Ingresses []ingress.IngressView `json:"ingresses"`
	// Count is len(Ingresses), repeated for client convenience
	Count int `json:"count"`
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	// Status is always "healthy" while the process serves requests
	Status string `json:"status"`
	// K8sClientAvailable reports whether cluster credentials resolved at
	// startup
	K8sClientAvailable bool `json:"k8s_client_available"`
}

// ErrorResponse is the body of any failed API request
type ErrorResponse struct {
	Error string `json:"error"`
}
