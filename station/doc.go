// Package station models the Orbitron space station: three fixed modules
// (control center, research lab, life support), one drone per module, and a
// mission control observer that queries the station through a weak handle.
//
// Every operation is a synchronous call that writes one line, or a small
// fixed group of lines, to the station Console. Conditions such as a wrong
// password, a missing drone, an unknown module name or a disconnected mission
// control are ordinary outcomes reported through the console and a bool or
// enum result; none of them is an error.
//
// Ownership: the station owns its modules, each module owns its drone, drones
// point back at their module, and mission control holds a weak pointer to the
// station so it never extends the station's lifetime.
package station
