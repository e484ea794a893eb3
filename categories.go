// Copyright 2026 The os-signpost Authors
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

package signpost

// Well-known categories for signpost instrumentation. Any other string
// is accepted as a custom category.
const (
	// CategoryPointsOfInterest marks high-level events that orient a
	// developer looking at performance data; trace viewers display
	// these by default.
	CategoryPointsOfInterest = "PointsOfInterest"

	// CategoryDynamicTracing marks signposts that should be disabled
	// by default to reduce runtime overhead, active only while a
	// performance tool is recording.
	CategoryDynamicTracing = "DynamicTracing"

	// CategoryDynamicStackTracing marks signposts that should capture
	// call stacks. More expensive than regular signposts, so active
	// only while a performance tool is recording.
	CategoryDynamicStackTracing = "DynamicStackTracing"
)
