// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A .env file and the process environment override the listen port, the
// NATS URL and the metrics address, so deployments can stay on the stock
// config file. Tracking thresholds default to the deployed policy values
// and should only be changed in lockstep with client expectations.
package config
