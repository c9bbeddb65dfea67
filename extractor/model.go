package extractor

// Plan is everything a single run needs, after flags, the config file and
// defaults have been merged.
type Plan struct {
	Gen    Gen
	Input  Input
	Output Output
}

type Gen struct {
	Name    string
	Version string
}

type Input struct {
	Source      string
	ImportPaths []string
	Files       []string
	Buf         string

	PayloadPrefix string
	ModelPrefix   string
}

type Output struct {
	PayloadTypes string
	ModelEnums   string
}
