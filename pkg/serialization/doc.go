// Package serialization routes response payloads to format-specific parsers.
//
// A ParseNodeFactoryRegistry maps content types to ParseNodeFactory
// implementations. A Deserializer consults the registry, obtains the root
// ParseNode for a payload and asks it to materialize one Parsable or an
// ordered collection of them. Generic helpers (Deserialize, DeserializeModel
// and friends) wrap the default Deserializer for generated client code.
package serialization
