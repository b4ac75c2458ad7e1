package properties

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	mproperties "github.com/magiconair/properties"
	"github.com/viant/afs"
)

// ErrNotFound is returned by Load when the properties file does not exist.
var ErrNotFound = errors.New("properties file not found")

// Encoding names the byte encoding of a properties file.
type Encoding string

const (
	// ISO88591 is the encoding java.util.Properties.load(InputStream) assumes.
	ISO88591 Encoding = "iso-8859-1"
	UTF8     Encoding = "utf-8"
)

// ParseEncoding maps a configuration value onto an Encoding. An empty value
// selects ISO88591.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "iso-8859-1", "iso8859-1", "latin1":
		return ISO88591, nil
	case "utf-8", "utf8":
		return UTF8, nil
	}
	return "", fmt.Errorf("unsupported properties encoding %q", name)
}

func (e Encoding) loader() *mproperties.Loader {
	enc := mproperties.ISO_8859_1
	if e == UTF8 {
		enc = mproperties.UTF8
	}
	return &mproperties.Loader{Encoding: enc, DisableExpansion: true}
}

// ConfigurationEntry is one key/value pair read from a properties file.
type ConfigurationEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// File is a parsed properties file.
type File struct {
	URL   string
	props *mproperties.Properties
}

// Get returns the entry for key and whether it was present.
func (f *File) Get(key string) (ConfigurationEntry, bool) {
	value, ok := f.props.Get(key)
	if !ok {
		return ConfigurationEntry{}, false
	}
	return ConfigurationEntry{Key: key, Value: value}, true
}

// Entries returns every entry ordered by key.
func (f *File) Entries() []ConfigurationEntry {
	keys := f.props.Keys()
	sort.Strings(keys)
	out := make([]ConfigurationEntry, 0, len(keys))
	for _, key := range keys {
		value, _ := f.props.Get(key)
		out = append(out, ConfigurationEntry{Key: key, Value: value})
	}
	return out
}

// Parse decodes properties content already held in memory.
func Parse(data []byte, enc Encoding) (*File, error) {
	props, err := enc.loader().LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return &File{props: props}, nil
}

// Load reads and parses the properties file at URL in one attempt. A missing
// file yields ErrNotFound; read and syntax failures are wrapped.
func Load(ctx context.Context, service afs.Service, URL string, enc Encoding) (*File, error) {
	data, err := service.DownloadWithURL(ctx, URL)
	if err != nil {
		if isNotFound(ctx, service, URL, err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, URL)
		}
		return nil, fmt.Errorf("read properties %q: %w", URL, err)
	}
	file, err := Parse(data, enc)
	if err != nil {
		return nil, fmt.Errorf("parse properties %q: %w", URL, err)
	}
	file.URL = URL
	return file, nil
}

// isNotFound classifies a failed download. The existence probe runs only
// after the read failed, so it never decides whether content is read.
func isNotFound(ctx context.Context, service afs.Service, URL string, cause error) bool {
	if errors.Is(cause, fs.ErrNotExist) {
		return true
	}
	exists, err := service.Exists(ctx, URL)
	return err == nil && !exists
}
