package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	serrors "github.com/amkisko/sex-cli/internal/errors"
	"github.com/amkisko/sex-cli/internal/keychain"
)

// EncryptedProject is a cached project entry. Name holds the encrypted
// display name as nonce followed by ciphertext; encoding/json renders it as
// base64 on the wire, so the plaintext name never reaches disk.
type EncryptedProject struct {
	Name []byte `json:"name"`
	Slug string `json:"slug"`
}

// Organization is one configured organization. Name is the user-chosen
// local identifier and the lookup key in Config; Slug identifies the
// organization on the remote system. The keychain handle is rebuilt from
// Name on every load and never serialized, so the config file can never
// contain a token.
type Organization struct {
	Name     string                      `json:"name"`
	Slug     string                      `json:"slug"`
	Projects map[string]EncryptedProject `json:"projects"`

	keys keychain.Store
}

// Config is the whole on-disk document plus its backing file path and
// secret-store handle. Zero organizations is a valid first-run state.
type Config struct {
	Organizations map[string]*Organization `json:"organizations"`

	path string
	keys keychain.Store
}

// ProjectMatch pairs an organization with whether the project was found in
// its local cache (true) or still needs a live API lookup (false).
type ProjectMatch struct {
	Org    *Organization
	Cached bool
}

// Load reads the configuration document from the default path.
func Load(keys keychain.Store) (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path, keys)
}

// LoadFrom reads the configuration document from an explicit path. A
// missing file is not an error: it yields a fresh empty Config bound to
// that path.
func LoadFrom(path string, keys keychain.Store) (*Config, error) {
	config := &Config{
		Organizations: make(map[string]*Organization),
		path:          path,
		keys:          keys,
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("%w %s: %v", serrors.ErrConfigParse, path, err)
	}

	// Rewire the unserialized state on every organization.
	for name, org := range config.Organizations {
		if org.Name == "" {
			org.Name = name
		}
		if org.Projects == nil {
			org.Projects = make(map[string]EncryptedProject)
		}
		org.keys = keys
	}
	return config, nil
}

// Save serializes the document as pretty-printed JSON and atomically
// replaces the backing file, creating the parent directory if needed. A
// crash mid-save leaves either the old file or the new one, never a
// truncated mix.
func (c *Config) Save() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	content, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, configFileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file in %s: %w", dir, err)
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config file %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config file %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace config file %s: %w", c.path, err)
	}
	return nil
}

// AddOrganization inserts an organization with no token and an empty
// project cache. Adding a name that already exists replaces the previous
// entry (last write wins).
func (c *Config) AddOrganization(name, slug string) *Organization {
	org := &Organization{
		Name:     name,
		Slug:     slug,
		Projects: make(map[string]EncryptedProject),
		keys:     c.keys,
	}
	c.Organizations[name] = org
	return org
}

// Organization looks up an organization by its local name. Absence is a
// normal not-found result.
func (c *Config) Organization(name string) (*Organization, bool) {
	org, ok := c.Organizations[name]
	return org, ok
}

// OrganizationNames returns the configured local names in sorted order.
func (c *Config) OrganizationNames() []string {
	names := make([]string, 0, len(c.Organizations))
	for name := range c.Organizations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CacheProject encrypts the project display name and stores it in the
// organization's cache, persisting the whole document before returning so
// every cache write is durable. Returns ErrOrganizationNotFound when the
// organization does not exist.
func (c *Config) CacheProject(orgName, projectSlug, projectName string) error {
	org, ok := c.Organizations[orgName]
	if !ok {
		return fmt.Errorf("%w: %s", serrors.ErrOrganizationNotFound, orgName)
	}

	blob, err := encryptName(c.keys, projectName)
	if err != nil {
		return err
	}

	org.Projects[projectSlug] = EncryptedProject{
		Name: blob,
		Slug: projectSlug,
	}
	return c.Save()
}

// FindProject locates organizations that have the given project. Cached
// matches are preferred; when no organization has the slug cached, every
// organization is returned flagged for a live lookup. Results are ordered
// by organization name for stable output.
func (c *Config) FindProject(projectSlug string) []ProjectMatch {
	var matches []ProjectMatch
	for _, name := range c.OrganizationNames() {
		org := c.Organizations[name]
		if org.HasProject(projectSlug) {
			matches = append(matches, ProjectMatch{Org: org, Cached: true})
		}
	}
	if len(matches) > 0 {
		return matches
	}

	for _, name := range c.OrganizationNames() {
		matches = append(matches, ProjectMatch{Org: c.Organizations[name], Cached: false})
	}
	return matches
}

// Project returns the decrypted display name of a cached project. The
// second result reports whether the slug is cached at all; a cached entry
// that fails to decrypt returns found=true with the error.
func (o *Organization) Project(slug string) (name string, found bool, err error) {
	project, ok := o.Projects[slug]
	if !ok {
		return "", false, nil
	}
	name, err = decryptName(o.keys, project.Name)
	if err != nil {
		return "", true, err
	}
	return name, true, nil
}

// HasProject reports whether the project slug has a cached entry.
func (o *Organization) HasProject(slug string) bool {
	_, ok := o.Projects[slug]
	return ok
}
