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
	"strings"
)

// Enabled reports whether an object with the given annotations should be
// included in the listing. The EnabledAnnotation value is trimmed and
// lower-cased before comparison; "false" excludes, "true" includes, and a
// missing or unrecognized value defers to defaultEnabled.
func Enabled(annotations map[string]string, defaultEnabled bool) bool {
	value, ok := annotations[EnabledAnnotation]
	if !ok {
		return defaultEnabled
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "false":
		return false
	case "true":
		return true
	}

	return defaultEnabled
}
