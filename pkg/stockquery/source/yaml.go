package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

// YAMLSource loads form requests from a YAML file or a directory of them.
type YAMLSource struct{}

// Load expects spec to be a string filepath.
func (YAMLSource) Load(ctx context.Context, spec any) ([]types.Request, error) { //nolint:revive // ctx reserved for future use
	path, ok := spec.(string)
	if !ok {
		return nil, fmt.Errorf("yaml source expects filepath string spec")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		reqs, err := readFile(path)
		if err != nil {
			return nil, err
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		nameRequests(reqs, base)
		return reqs, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var all []types.Request
	for _, full := range files {
		reqs, err := readFile(full)
		if err != nil {
			return nil, err
		}
		// Prefix names with the relative path, without extension.
		rel, err := filepath.Rel(path, full)
		if err != nil {
			rel = filepath.Base(full)
		}
		prefix := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
		for i := range reqs {
			if strings.TrimSpace(reqs[i].Name) != "" {
				reqs[i].Name = prefix + "/" + reqs[i].Name
			}
		}
		nameRequests(reqs, prefix)
		all = append(all, reqs...)
	}
	return all, nil
}

func readFile(path string) ([]types.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	reqs, err := parseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reqs, nil
}

// parseYAML accepts two shapes:
//  1. a top-level list of requests: "- ticker: aapl"
//  2. a map with a queries list: "queries: [...]"
func parseYAML(data []byte) ([]types.Request, error) {
	var list []types.Request
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc struct {
		Queries []types.Request `yaml:"queries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Queries == nil {
		return nil, fmt.Errorf("invalid yaml: missing 'queries'")
	}
	return doc.Queries, nil
}

// nameRequests gives unnamed requests a "<base>#<n>" name, 1-based.
func nameRequests(reqs []types.Request, base string) {
	for i := range reqs {
		if strings.TrimSpace(reqs[i].Name) == "" {
			reqs[i].Name = fmt.Sprintf("%s#%d", base, i+1)
		}
	}
}
