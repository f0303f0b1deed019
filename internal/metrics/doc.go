// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

/*
Package metrics provides Prometheus metrics collection and export for
observability.

# Available Metrics

HTTP Metrics:
  - http_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status
  - http_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - http_requests_in_flight: Active requests (gauge)

Matching Metrics:
  - match_requests_total: Match requests served (counter)
  - match_results: Results per match request (histogram)
  - match_duration_seconds: Scoring pass duration (histogram)

Recommendation Metrics:
  - recommendation_requests_total: Recommendation requests (counter)
    Labels: source (generated, cache, cold_start)
  - recommendation_list_size: Final list size per request (histogram)

Similarity Metrics:
  - similarity_rebuilds_total: Matrix rebuilds (counter)
  - similarity_rebuild_duration_seconds: Rebuild duration (histogram)
  - similarity_providers: Providers in the last rebuild (gauge)

Behavior Metrics:
  - behavior_events_total: Behavior updates (counter)
    Labels: event (consultation, search_query)

Metrics are exposed at /metrics in Prometheus text format. All recording
functions are safe for concurrent use.
*/
package metrics
