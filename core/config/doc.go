// Package config assembles the application configuration from environment
// variables and an optional .env file. Each subsystem declares its own
// partial Config struct; this package composes them and binds defaults from
// struct tags.
package config
