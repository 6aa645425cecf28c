/*
Copyright 2026 Dima Krasner

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package as

// Actor represents a person.
type Actor struct {
	ObjectType  ObjectType `json:"objectType"`
	ID          string     `json:"id,omitempty"`
	NumericID   string     `json:"numeric_id,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
	Username    string     `json:"username,omitempty"`
	URL         string     `json:"url,omitempty"`
	URLs        []Link     `json:"urls,omitempty"`
	Image       *Media     `json:"image,omitempty"`
	Description string     `json:"description,omitempty"`
	Published   string     `json:"published,omitempty"`
}
