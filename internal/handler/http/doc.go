// Package http implements the HTTP transport layer of the config reader.
//
// It exposes the content API (/api/contents), the version endpoint and, when
// a native repository is configured, an embedded Spring Cloud Config
// compatible API under /config. Request tracing, access logging and response
// compression are handled by middleware before requests reach the service
// layer.
package http
