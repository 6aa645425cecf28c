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

package mastodon

// API paths, relative to the instance URL.
const (
	PathVerifyCredentials = "/api/v1/accounts/verify_credentials"
	PathAccount           = "/api/v1/accounts/%s"
	PathAccountStatuses   = "/api/v1/accounts/%s/statuses"
	PathContext           = "/api/v1/statuses/%s/context"
	PathFavourite         = "/api/v1/statuses/%s/favourite"
	PathFavouritedBy      = "/api/v1/statuses/%s/favourited_by"
	PathMedia             = "/api/v1/media"
	PathNotifications     = "/api/v1/notifications"
	PathReblog            = "/api/v1/statuses/%s/reblog"
	PathRebloggedBy       = "/api/v1/statuses/%s/reblogged_by"
	PathSearch            = "/api/v2/search"
	PathStatus            = "/api/v1/statuses/%s"
	PathStatuses          = "/api/v1/statuses"
	PathHomeTimeline      = "/api/v1/timelines/home"
)

// PathWebStatus is the path of a status in the web interface, used when only its ID is known.
const PathWebStatus = "/web/statuses/%s"
