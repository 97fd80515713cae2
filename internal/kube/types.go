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
	"k8s.io/client-go/rest"
)

// ConfigProvider interface defines one strategy for resolving cluster
// credentials
type ConfigProvider interface {
	// Name identifies the strategy in logs and error messages
	Name() string
	// Config attempts to resolve a rest.Config for the cluster
	Config() (*rest.Config, error)
}
