// Package config loads SDK configuration for host applications.
//
// It uses Viper to read a config.yml plus environment variables, loading a
// .env file first when one is present, and unmarshals the result into
// Config. Hosts that construct broker.Config in code do not need this
// package at all.
package config
