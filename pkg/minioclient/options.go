package minioclient

import "time"

type Option func(*MinIOClient)

func ConnAttempts(attempts int) Option {
	return func(mc *MinIOClient) {
		mc.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(mc *MinIOClient) {
		mc.connTimeout = timeout
	}
}

func UseSSL(use bool) Option {
	return func(mc *MinIOClient) {
		mc.useSSL = use
	}
}
