// Package clientruntime wires the deserialization runtime used by generated
// API clients: typed enum resolution (pkg/enums), the content-type registry and
// parse dispatcher (pkg/serialization), the built-in format plug-ins and the
// OpenAPI enum catalog loader.
//
// A typical client registers the formats it speaks once at start-up and then
// deserializes responses by content type:
//
//	if err := clientruntime.RegisterDefaultFormats(nil, "json"); err != nil {
//		return err
//	}
//	user, err := serialization.DeserializeModelString[User]("application/json", body)
package clientruntime
