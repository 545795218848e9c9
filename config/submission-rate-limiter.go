package config

// Rate limit configuration for the registration submission endpoint
type SubmissionRateLimitConfig struct {
	Rate  int // Maximum submissions per minute per IP
	Burst int // Burst capacity
}

var DefaultSubmissionRateLimit = SubmissionRateLimitConfig{
	Rate:  30,
	Burst: 20,
}
