package buildmap

// ImportMap is the browser-native module map: specifier to resolvable URL.
type ImportMap struct {
	Imports map[string]string `json:"imports"`
}

// Result is the outcome of one build over a file snapshot. It is derived
// entirely from the input mapping and recomputed on every change; nothing
// in it is persisted.
type Result struct {
	ImportMap ImportMap
	Styles    string
	Errors    []string
}
