// Package ai contains the text-generation provider abstraction and its
// OpenAI-compatible HTTP implementation. Services depend on the
// TextGenerationProvider interface only; the concrete client is wired in
// at startup.
package ai
