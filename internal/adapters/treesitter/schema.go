package treesitter

// fieldSpec is one declared field of a grammar production, in grammar order.
type fieldSpec struct {
	name string
	list bool
}

// production is the declared field layout for one grammar production.
// rest names the field that collects named children the grammar does not
// assign to a field (e.g. statement lists). text marks productions whose
// source text is meaningful alongside their children (string contents,
// where escape sequences are named sub-nodes of literal text).
type production struct {
	fields []fieldSpec
	rest   string
	text   bool
}

// stmts is shorthand for productions whose named children are all
// positional (no declared fields).
func stmts(rest string) production {
	return production{rest: rest}
}

// productions maps every structured production of the Python grammar to its
// field layout. Serialization walks this table, never the host's attribute
// order, so output shape depends only on the grammar. Productions absent
// from the table must be leaf tokens (identifier, integer, operators);
// meeting an unlisted production with children is an internal shape error.
var productions = map[string]production{
	"module": stmts("body"),

	// Imports.
	"import_statement":        {fields: []fieldSpec{{"name", true}}},
	"import_from_statement":   {fields: []fieldSpec{{"module_name", false}, {"name", true}}, rest: "children"},
	"future_import_statement": {fields: []fieldSpec{{"name", true}}},
	"relative_import":         stmts("children"),
	"aliased_import":          {fields: []fieldSpec{{"name", false}, {"alias", false}}},
	"dotted_name":             stmts("children"),

	// Simple statements.
	"expression_statement": stmts("children"),
	"return_statement":     stmts("children"),
	"delete_statement":     stmts("children"),
	"raise_statement":      {fields: []fieldSpec{{"cause", false}}, rest: "children"},
	"assert_statement":     stmts("children"),
	"global_statement":     stmts("children"),
	"nonlocal_statement":   stmts("children"),
	"exec_statement":       {fields: []fieldSpec{{"code", false}}, rest: "children"},
	"print_statement":      {fields: []fieldSpec{{"argument", true}}, rest: "children"},
	"type_alias_statement": stmts("children"),

	// Compound statements.
	"if_statement":    {fields: []fieldSpec{{"condition", false}, {"consequence", false}, {"alternative", true}}},
	"elif_clause":     {fields: []fieldSpec{{"condition", false}, {"consequence", false}}},
	"else_clause":     {fields: []fieldSpec{{"body", false}}},
	"for_statement":   {fields: []fieldSpec{{"left", false}, {"right", false}, {"body", false}, {"alternative", false}}},
	"while_statement": {fields: []fieldSpec{{"condition", false}, {"body", false}, {"alternative", false}}},
	"try_statement":   {fields: []fieldSpec{{"body", false}}, rest: "children"},
	"except_clause":   stmts("children"),
	"except_group_clause": stmts("children"),
	"finally_clause":  stmts("children"),
	"with_statement":  {fields: []fieldSpec{{"body", false}}, rest: "children"},
	"with_clause":     stmts("children"),
	"with_item":       {fields: []fieldSpec{{"value", false}}},
	"match_statement": {fields: []fieldSpec{{"subject", true}, {"body", false}}},
	"case_clause":     {fields: []fieldSpec{{"guard", false}, {"consequence", false}}, rest: "children"},
	"block":           stmts("body"),

	// Definitions.
	"function_definition":     {fields: []fieldSpec{{"name", false}, {"type_parameters", false}, {"parameters", false}, {"return_type", false}, {"body", false}}},
	"class_definition":        {fields: []fieldSpec{{"name", false}, {"type_parameters", false}, {"superclasses", false}, {"body", false}}},
	"decorated_definition":    {fields: []fieldSpec{{"definition", false}}, rest: "children"},
	"decorator":               stmts("children"),
	"parameters":              stmts("children"),
	"lambda_parameters":       stmts("children"),
	"default_parameter":       {fields: []fieldSpec{{"name", false}, {"value", false}}},
	"typed_parameter":         {fields: []fieldSpec{{"type", false}}, rest: "children"},
	"typed_default_parameter": {fields: []fieldSpec{{"name", false}, {"type", false}, {"value", false}}},
	"list_splat_pattern":       stmts("children"),
	"dictionary_splat_pattern": stmts("children"),
	"type_parameter":          stmts("children"),
	"type":                    stmts("children"),
	"argument_list":           stmts("children"),

	// Expressions.
	"assignment":           {fields: []fieldSpec{{"left", false}, {"type", false}, {"right", false}}},
	"augmented_assignment": {fields: []fieldSpec{{"left", false}, {"operator", false}, {"right", false}}},
	"named_expression":     {fields: []fieldSpec{{"name", false}, {"value", false}}},
	"binary_operator":      {fields: []fieldSpec{{"left", false}, {"operator", false}, {"right", false}}},
	"boolean_operator":     {fields: []fieldSpec{{"left", false}, {"operator", false}, {"right", false}}},
	"unary_operator":       {fields: []fieldSpec{{"operator", false}, {"argument", false}}},
	"not_operator":         {fields: []fieldSpec{{"argument", false}}},
	"comparison_operator":  {fields: []fieldSpec{{"operators", true}}, rest: "children"},
	"conditional_expression": stmts("children"),
	"lambda":               {fields: []fieldSpec{{"parameters", false}, {"body", false}}},
	"call":                 {fields: []fieldSpec{{"function", false}, {"arguments", false}}},
	"attribute":            {fields: []fieldSpec{{"object", false}, {"attribute", false}}},
	"subscript":            {fields: []fieldSpec{{"value", false}, {"subscript", true}}},
	"slice":                stmts("children"),
	"keyword_argument":     {fields: []fieldSpec{{"name", false}, {"value", false}}},
	"await":                stmts("children"),
	"yield":                stmts("children"),
	"parenthesized_expression": stmts("children"),
	"expression_list":      stmts("children"),
	"pattern_list":         stmts("children"),
	"tuple_pattern":        stmts("children"),
	"list_pattern":         stmts("children"),

	// Containers and comprehensions.
	"list":       stmts("children"),
	"set":        stmts("children"),
	"tuple":      stmts("children"),
	"dictionary": stmts("children"),
	"pair":       {fields: []fieldSpec{{"key", false}, {"value", false}}},
	"list_splat":       stmts("children"),
	"dictionary_splat": stmts("children"),
	"list_comprehension":       {fields: []fieldSpec{{"body", false}}, rest: "children"},
	"set_comprehension":        {fields: []fieldSpec{{"body", false}}, rest: "children"},
	"dictionary_comprehension": {fields: []fieldSpec{{"body", false}}, rest: "children"},
	"generator_expression":     {fields: []fieldSpec{{"body", false}}, rest: "children"},
	"for_in_clause": {fields: []fieldSpec{{"left", false}, {"right", false}}},
	"if_clause":     stmts("children"),

	// Strings. string_content is usually a leaf, but escape sequences
	// (and doubled braces in f-strings) surface as named children inside
	// it, so it keeps both its raw text and the escape nodes.
	"string":              stmts("children"),
	"string_content":      {rest: "children", text: true},
	"concatenated_string": stmts("children"),
	"interpolation":       {fields: []fieldSpec{{"expression", false}, {"type_conversion", false}, {"format_specifier", false}}},
	"format_specifier":    stmts("children"),

	// Match patterns.
	"case_pattern":      stmts("children"),
	"union_pattern":     stmts("children"),
	"dict_pattern":      stmts("children"),
	"class_pattern":     stmts("children"),
	"splat_pattern":     stmts("children"),
	"keyword_pattern":   stmts("children"),
	"as_pattern":        {fields: []fieldSpec{{"alias", false}}, rest: "children"},
	"as_pattern_target": stmts("children"),
	"complex_pattern":   stmts("children"),

	// Misc.
	"chevron": stmts("children"),
}
