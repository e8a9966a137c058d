// Package api implements the HTTP transport for the TextLink API.
package api
