/*
Package observability provides Prometheus collectors for monitoring
environment checks.

The Metrics bundle tracks how often checks run, which fields fail, and
how long a full pass takes. Register it against any prometheus.Registerer
and record outcomes with ObserveCheck.
*/
package observability
