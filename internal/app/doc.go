// Package app is the composition root of the server: it builds storages,
// services, handlers and the transport server from one configuration and
// owns their lifecycle.
package app
