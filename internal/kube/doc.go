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

// Package kube bootstraps the Kubernetes clientset.
//
// Credential discovery is an ordered chain of ConfigProvider strategies
// tried until one resolves: the in-cluster service account when running in a
// pod, then a kubeconfig file for local development. Callers that need a
// different order or an extra strategy pass their own providers to
// NewClientset.
package kube
