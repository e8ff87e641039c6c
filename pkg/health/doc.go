// Package health serves liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs. [ReadinessHandler]
// runs every named [CheckFunc] in parallel under a shared timeout and answers
// 503 if any of them fails.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "redis": redis.Healthcheck(client),
//	}, health.WithLogger(log)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// asks for JSON with an Accept header or ?format=json:
//
//	{"status":"unhealthy","checks":{"redis":{"status":"unhealthy","error":"..."}}}
package health
