// registry.go - process-wide module type registry

package ggm

// moduleRegistry holds every known module type, keyed by its full
// registry name (e.g. "env/adsr"). The original engine builds this as
// a linker-discovered static array; Go has no equivalent trick, so
// each module file registers itself from an init() function instead -
// the closest idiomatic match to "process-wide immutable data
// initialized once" without reaching for code generation or a runtime
// plugin loader.
var moduleRegistry = map[string]*ModuleType{}

// registerModuleType adds mt to the registry. Called only from init()
// functions in this package; a name collision is a programming error.
func registerModuleType(mt *ModuleType) {
	if _, exists := moduleRegistry[mt.MName]; exists {
		panic("ggm: duplicate module type " + mt.MName)
	}
	moduleRegistry[mt.MName] = mt
}

// findModuleType looks up a module type by its registry name.
func findModuleType(name string) *ModuleType {
	return moduleRegistry[name]
}
