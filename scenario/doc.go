// Package scenario reads a YAML description of a realm and builds a
// core.Realm from it.
//
// Format:
//
//	towns:
//	  - {id: A, name: Alpha, x: 0, y: 0, tax: 100}
//	  - {id: B, name: Beta, x: 3, y: 4, tax: 50}
//	vassals:
//	  - {vassal: B, master: A}
//	roads:
//	  - [A, B]
//
// Unknown keys are rejected. A town without a name is named after its ID.
// Vassalships and roads are applied in file order, so attachment and road
// insertion order (and with them every order-dependent query) follow the file.
package scenario
