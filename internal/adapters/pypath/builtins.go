package pypath

// builtinModules mirrors CPython's sys.builtin_module_names: modules
// compiled into the interpreter with no source artifact. Resolving one of
// these yields the "builtin" sentinel path instead of a file.
var builtinModules = map[string]bool{
	"_abc":          true,
	"_ast":          true,
	"_codecs":       true,
	"_collections":  true,
	"_functools":    true,
	"_imp":          true,
	"_io":           true,
	"_locale":       true,
	"_operator":     true,
	"_signal":       true,
	"_sre":          true,
	"_stat":         true,
	"_string":       true,
	"_symtable":     true,
	"_thread":       true,
	"_tokenize":     true,
	"_tracemalloc":  true,
	"_warnings":     true,
	"_weakref":      true,
	"atexit":        true,
	"builtins":      true,
	"errno":         true,
	"faulthandler":  true,
	"gc":            true,
	"itertools":     true,
	"marshal":       true,
	"posix":         true,
	"pwd":           true,
	"sys":           true,
	"time":          true,
}
