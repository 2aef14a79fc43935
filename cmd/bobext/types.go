package main

// CLIDocEntry is one rendered entry: a variable, function, class, method,
// or attribute.
type CLIDocEntry struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Doc  string `json:"doc"`
}

// CLIFinding is one documentation gap surfaced by lint.
type CLIFinding struct {
	Entry   string `json:"entry"`
	Message string `json:"message"`
}
