package extractor

import (
	"errors"
	"io"
	"os"

	"github.com/goaux/stacktrace/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the command's metadata and the defaults of its flags.
// Empty defaults fall back to the cTrader Open API names.
type Config struct {
	Use     string
	Short   string
	Long    string
	Version string

	DefaultSource        string
	DefaultPayloadPrefix string
	DefaultModelPrefix   string
	DefaultPayloadOut    string
	DefaultModelOut      string
}

// FileConfig is the layout of the YAML file given with --config.
type FileConfig struct {
	Source        string   `yaml:"source"`
	ProtoPath     []string `yaml:"protoPath"`
	Files         []string `yaml:"files"`
	Buf           string   `yaml:"buf"`
	PayloadPrefix string   `yaml:"payloadPrefix"`
	ModelPrefix   string   `yaml:"modelPrefix"`
	PayloadOut    string   `yaml:"payloadOut"`
	ModelOut      string   `yaml:"modelOut"`
}

// ReadFileConfig decodes the YAML file at path.
func ReadFileConfig(path string) (*FileConfig, error) {
	f, err := stacktrace.Trace2(os.Open(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fc := new(FileConfig)
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, stacktrace.Trace(err)
	}
	return fc, nil
}
