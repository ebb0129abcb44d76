// Package profile persists named (widths, layout, delimiter,
// break-long-words) presets so repeated invocations against similarly
// shaped data don't require re-typing the planner flags every time.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// schemaVersion is stamped into every profile store this package writes.
// A store from a newer incompatible major version is rejected rather than
// silently misread.
const schemaVersion = "1.0.0"

var supportedSchema = semver.MustParse(schemaVersion)

// Profile is a saved planner preset.
type Profile struct {
	Name           string `json:"name"`
	Widths         string `json:"widths"` // raw -W value, e.g. "14,-,20"
	Layout         string `json:"layout"`
	Delimiter      string `json:"delimiter"`
	BreakLongWords bool   `json:"break_long_words"`
}

// Store is a JSON document of named profiles at a single path on disk.
type Store struct {
	path string
}

// DefaultPath returns ~/.coltab/profiles.json. The parent directory need
// not exist; it is created lazily on Save.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".coltab", "profiles.json"), nil
}

// Open returns a Store backed by path, which need not exist yet.
func Open(path string) *Store {
	return &Store{path: path}
}

func (s *Store) read() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Sprintf(`{"schema_version":%q,"profiles":{}}`, schemaVersion), nil
		}
		return "", err
	}
	doc := string(b)
	if err := checkSchema(doc); err != nil {
		return "", err
	}
	return doc, nil
}

func checkSchema(doc string) error {
	raw := gjson.Get(doc, "schema_version").String()
	if raw == "" {
		return nil // pre-existing store with no stamp: treat as compatible
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("profile store: invalid schema_version %q", raw)
	}
	if v.Major() > supportedSchema.Major() {
		return fmt.Errorf("profile store: schema version %s is newer than the supported %s", raw, schemaVersion)
	}
	return nil
}

// Save writes p under its own name, overwriting any existing profile of
// the same name.
func (s *Store) Save(p Profile) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	base := "profiles." + gjson.Escape(p.Name)
	doc, err = sjson.Set(doc, "schema_version", schemaVersion)
	if err != nil {
		return err
	}
	doc, err = sjson.Set(doc, base+".widths", p.Widths)
	if err != nil {
		return err
	}
	doc, err = sjson.Set(doc, base+".layout", p.Layout)
	if err != nil {
		return err
	}
	doc, err = sjson.Set(doc, base+".delimiter", p.Delimiter)
	if err != nil {
		return err
	}
	doc, err = sjson.Set(doc, base+".break_long_words", p.BreakLongWords)
	if err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) write(doc string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(doc), 0o600)
}

// Get returns the named profile. ok is false if no such profile exists.
func (s *Store) Get(name string) (Profile, bool, error) {
	doc, err := s.read()
	if err != nil {
		return Profile{}, false, err
	}
	res := gjson.Get(doc, "profiles."+gjson.Escape(name))
	if !res.Exists() {
		return Profile{}, false, nil
	}
	return Profile{
		Name:           name,
		Widths:         res.Get("widths").String(),
		Layout:         res.Get("layout").String(),
		Delimiter:      res.Get("delimiter").String(),
		BreakLongWords: res.Get("break_long_words").Bool(),
	}, true, nil
}

// List returns every saved profile, ordered by name.
func (s *Store) List() ([]Profile, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	var out []Profile
	gjson.Get(doc, "profiles").ForEach(func(key, value gjson.Result) bool {
		out = append(out, Profile{
			Name:           key.String(),
			Widths:         value.Get("widths").String(),
			Layout:         value.Get("layout").String(),
			Delimiter:      value.Get("delimiter").String(),
			BreakLongWords: value.Get("break_long_words").Bool(),
		})
		return true
	})
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

// Delete removes the named profile. It is not an error to delete a profile
// that does not exist.
func (s *Store) Delete(name string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc, err = sjson.Delete(doc, "profiles."+gjson.Escape(name))
	if err != nil {
		return err
	}
	return s.write(doc)
}
