// Package server exposes the latest drift report over HTTP using Fiber.
// It serves the rendered HTML page and the raw JSON document; all heavy
// lifting happens at compare time, the server only reads artifacts.
package server
