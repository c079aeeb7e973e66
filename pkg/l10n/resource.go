package l10n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Resource is one parsed resource document.
type Resource struct {
	Path string

	entries  []*entry
	messages []*i18n.Message
}

// ResourceSet is the ordered list of documents of one locale.
type ResourceSet []*Resource

// Resources maps every locale directory to its documents.
type Resources map[Locale]ResourceSet

// catalogFormats are the go-i18n message file formats accepted next to .ftl
// documents. JSON is built into go-i18n.
var catalogFormats = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// Root returns the resource tree rooted at dir on the local disk.
func Root(dir string) fs.FS {
	return os.DirFS(dir)
}

// LoadResources reads every locale directory under the root of fsys.
// Each immediate subdirectory is a locale and each file inside it is one
// document. Files at the root are ignored. Any unreadable or malformed
// document fails the whole load.
func LoadResources(fsys fs.FS) (Resources, error) {
	dirs, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: read root: %w", ErrInvalidResource, err)
	}

	var (
		mu  sync.Mutex
		g   errgroup.Group
		out = make(Resources, len(dirs))
	)
	for _, d := range dirs {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		g.Go(func() error {
			set, err := loadLocale(fsys, d.Name())
			if err != nil {
				return err
			}
			mu.Lock()
			out[Locale(d.Name())] = set
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func loadLocale(fsys fs.FS, dir string) (ResourceSet, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidResource, dir, err)
	}

	set := make(ResourceSet, 0, len(files))
	for _, f := range files {
		name := path.Join(dir, f.Name())
		if strings.HasPrefix(f.Name(), ".") {
			continue
		}
		if f.IsDir() {
			return nil, fmt.Errorf("%w: %s: nested directories are not supported", ErrInvalidResource, name)
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidResource, name, err)
		}
		res, err := ParseResource(name, data)
		if err != nil {
			return nil, err
		}
		set = append(set, res)
	}
	return set, nil
}

// ParseResource parses a single document. The format follows the file
// extension: go-i18n catalogs for .toml, .yaml, .yml and .json, the Fluent
// resource syntax for everything else.
func ParseResource(name string, data []byte) (*Resource, error) {
	res := &Resource{Path: name}

	switch strings.ToLower(path.Ext(name)) {
	case ".toml", ".yaml", ".yml", ".json":
		mf, err := i18n.ParseMessageFileBytes(data, path.Base(name), catalogFormats)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidResource, name, err)
		}
		res.messages = mf.Messages
	default:
		entries, err := parseFTL(name, data)
		if err != nil {
			return nil, err
		}
		res.entries = entries
	}
	return res, nil
}

// IDs returns the formattable message ids declared by the document, in
// declaration order.
func (r *Resource) IDs() []string {
	var ids []string
	for _, e := range r.entries {
		if e.isTerm() {
			continue
		}
		if len(e.value) > 0 {
			ids = append(ids, e.id)
		}
		for _, a := range e.attrs {
			ids = append(ids, e.id+"."+a.name)
		}
	}
	for _, m := range r.messages {
		ids = append(ids, m.ID)
	}
	return ids
}
