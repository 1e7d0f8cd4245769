package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"enum-registry/core/registry"
	"enum-registry/core/storage"

	"github.com/minio/minio-go/v7"
	"gopkg.in/yaml.v3"
)

// Catalog is the ordered list of definitions read from one source.
type Catalog struct {
	Definitions []Definition
}

// Candidates returns the registry candidates in discovery order.
func (c *Catalog) Candidates() []registry.Candidate {
	out := make([]registry.Candidate, 0, len(c.Definitions))
	for _, def := range c.Definitions {
		out = append(out, def.Candidate())
	}
	return out
}

// Registry builds a registry from the catalog.
func (c *Catalog) Registry(strict bool) (*registry.Registry, error) {
	return registry.New(c.Candidates(), registry.WithStrictValues(strict))
}

// Load reads the catalog from the source named in cfg.
// client may be nil when the source is a local directory.
func Load(ctx context.Context, cfg Config, client storage.Client, bucket string) (*Catalog, error) {
	switch strings.ToLower(cfg.Source) {
	case "", SourceFile:
		return LoadDir(cfg.Path)
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("catalog source %q requires a storage client", cfg.Source)
		}
		return LoadFromStorage(ctx, client, bucket, cfg.Prefix)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// LoadDir reads every *.yaml and *.yml file in dir, in lexical order.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog dir %s: %w", dir, err)
	}

	cat := &Catalog{}
	for _, entry := range entries {
		if entry.IsDir() || !isCatalogFile(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		defs, err := Parse(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		cat.Definitions = append(cat.Definitions, defs...)
	}
	return cat, nil
}

// LoadFromStorage reads every catalog object under prefix, ordered by key.
func LoadFromStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*Catalog, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	var keys []string
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list catalog objects: %w", obj.Err)
		}
		if isCatalogFile(obj.Key) {
			keys = append(keys, obj.Key)
		}
	}
	sort.Strings(keys)

	cat := &Catalog{}
	for _, key := range keys {
		data, err := readObject(ctx, client, bucket, key)
		if err != nil {
			return nil, err
		}
		defs, err := Parse(path.Base(key), data)
		if err != nil {
			return nil, err
		}
		cat.Definitions = append(cat.Definitions, defs...)
	}
	return cat, nil
}

// Parse decodes and validates one catalog file.
func Parse(fileName string, data []byte) ([]Definition, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, fileName, err)
	}

	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, fileName, err)
	}
	_, hasEnums := keys["enums"]
	_, hasMembers := keys["members"]
	if !hasEnums && !hasMembers {
		return nil, fmt.Errorf("%w: %s: neither enums nor members declared", ErrInvalidDefinition, fileName)
	}

	defs := file.Enums
	if !hasEnums {
		single := file.Definition
		if single.Name == "" {
			single.Name = strings.TrimSuffix(fileName, filepath.Ext(fileName))
		}
		defs = []Definition{single}
	}

	for _, def := range defs {
		if err := Validate(def); err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
	}
	return defs, nil
}

func readObject(ctx context.Context, client storage.Client, bucket, key string) ([]byte, error) {
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func isCatalogFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
