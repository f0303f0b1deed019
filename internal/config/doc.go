// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package config loads service configuration via Koanf v2 with layered
// sources, highest priority last:
//
//  1. Built-in defaults (structs provider)
//  2. Config file (config.yaml, or ORACLIA_CONFIG_PATH)
//  3. Environment variables (ORACLIA_ prefix, e.g. ORACLIA_SERVER_PORT)
//
// The loaded Config is validated before use; an invalid configuration
// fails startup rather than degrading silently.
package config
