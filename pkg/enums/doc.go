// Package enums converts wire tokens into enumeration values. A Descriptor is
// the explicit table behind an enumeration: canonical member names, their
// underlying integers and any alternate wire names. Generated enum types expose
// their descriptor through an EnumDescriptor method so Parse can resolve them
// without reflection, while callers that only hold a *Descriptor can resolve
// through Descriptor.Parse. Both paths share the same resolution rules.
package enums
