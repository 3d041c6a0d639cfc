// Package events carries review outcomes from the engine to whatever records
// them. Services emit events without knowing which handlers consume them, so
// storage and analytics collaborators subscribe instead of being called
// directly.
//
// The primary components are:
//   - Event: an envelope with an ID, a type and a JSON payload
//   - Handler: implemented by consumers
//   - Emitter: implemented by dispatchers; InMemoryEmitter is the default
package events
