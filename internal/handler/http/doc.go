// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the blog API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as bearer authentication, request tracing,
// access logging, metrics, CORS and compression are handled in this package
// before requests are delegated to the service layer. Every failure leaves
// through one error mapper that turns service errors into status codes and
// JSON error bodies.
package http
