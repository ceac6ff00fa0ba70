/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the registry
API, tracking HTTP requests, registry size, uploads and repository creation.

Every Metrics value owns a private prometheus.Registry, so tests and embedded
servers never collide on the global default registry.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	metrics.SetRegistrySize(4, 0)
	metrics.RecordPackageUpload("pypi-hosted")

	timer := monitoring.NewTimer(metrics, "packages", "upload")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
