/*
Package observability turns chat lifecycle events into Prometheus metrics and
structured log records.

Both are exposed as domain.LifecycleHooks, so they plug into the runner (or the
appguide.Guide) without the core knowing about either.
*/
package observability
