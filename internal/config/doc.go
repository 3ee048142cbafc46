// Package config defines the application configuration structure and the
// logic for loading it from environment variables. Configuration is loaded
// once at startup into an explicit Config object passed to components;
// nothing reads the environment ad hoc after that.
package config
