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

// Package server exposes the kavorites HTTP surface: the JSON API under
// /api, Prometheus metrics under /metrics, and the embedded overview page
// at the root.
//
// Endpoints:
//   - GET /api/ingresses scans the cluster and returns the enabled
//     ingresses with their projected URLs
//   - GET /api/health reports liveness and Kubernetes client availability
//   - GET / serves a self-contained HTML page over the API
//
// The server always starts, with or without cluster credentials. Without
// them /api/ingresses fails with HTTP 500 and /api/health reports
// k8s_client_available false.
package server
