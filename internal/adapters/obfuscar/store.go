// Package obfuscar reads and writes Obfuscar XML configuration files.
//
// A base config holds the obfuscation options, the assembly search paths
// and the module to obfuscate:
//
//	<Obfuscator>
//	  <Var name="HideStrings" value="true" />
//	  <AssemblySearchPath path="..\lib" />
//	  <Module file="$(InPath)\App.dll">
//	    <SkipNamespace name="App.Models" />
//	  </Module>
//	</Obfuscator>
//
// A run config sets the input and output directories of one
// configuration/platform pair and includes the base config.
package obfuscar

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"go.trai.ch/obtools/internal/adapters/xmlfile"
	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/obtools/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	rootTag       = "Obfuscator"
	varTag        = "Var"
	searchPathTag = "AssemblySearchPath"
	moduleTag     = "Module"
	skipNSTag     = "SkipNamespace"
	includeTag    = "Include"

	inPathVar  = "InPath"
	outPathVar = "OutPath"
)

var _ ports.ConfigStore = (*Store)(nil)

// Store implements ports.ConfigStore.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ReadBase reads the base config at path. A missing file yields the defaults.
func (s *Store) ReadBase(path string) (*domain.BaseConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := domain.DefaultBaseConfig()
	root, err := readRoot(path)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return cfg, nil
	}

	for name, value := range vars(root) {
		opt := domain.Option(name)
		if !opt.IsKnown() {
			continue
		}
		if b, err := strconv.ParseBool(value); err == nil {
			cfg.Options[opt] = b
		}
	}

	for _, el := range root.SelectElements(searchPathTag) {
		if p := el.SelectAttrValue("path", ""); p != "" {
			cfg.AssemblySearchPaths = append(cfg.AssemblySearchPaths, p)
		}
	}

	if module := root.SelectElement(moduleTag); module != nil {
		cfg.Module = module.SelectAttrValue("file", "")
		for _, el := range module.SelectElements(skipNSTag) {
			if ns := el.SelectAttrValue("name", ""); ns != "" {
				cfg.NamespacesToSkip = append(cfg.NamespacesToSkip, ns)
			}
		}
	}

	return cfg, nil
}

// WriteBase merges cfg into the base config at path. Every known option is
// written. Search paths and the module's skipped namespaces are replaced by
// those of cfg. A Module without a file attribute is created to hold skipped
// namespaces until the module is known. Other content is left untouched.
func (s *Store) WriteBase(path string, cfg *domain.BaseConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, root, err := openRoot(path)
	if err != nil {
		return err
	}

	for _, opt := range domain.AllOptions() {
		setVar(root, string(opt), strconv.FormatBool(cfg.Options.Get(opt)))
	}

	keep := make(map[string]bool, len(cfg.AssemblySearchPaths))
	for _, p := range cfg.AssemblySearchPaths {
		keep[p] = true
	}
	for _, el := range root.SelectElements(searchPathTag) {
		if !keep[el.SelectAttrValue("path", "")] {
			xmlfile.RemoveChild(root, el)
		}
	}
	for _, p := range cfg.AssemblySearchPaths {
		if findByAttr(root, searchPathTag, "path", p) != nil {
			continue
		}
		el := xmlfile.InsertChildAfter(root, lastOf(root, searchPathTag, varTag), searchPathTag)
		el.CreateAttr("path", p)
	}

	module := root.SelectElement(moduleTag)
	if module == nil && (cfg.Module != "" || len(cfg.NamespacesToSkip) > 0) {
		module = xmlfile.AppendChild(root, moduleTag)
	}
	if module != nil {
		if cfg.Module != "" {
			module.CreateAttr("file", cfg.Module)
		}
		for _, el := range module.SelectElements(skipNSTag) {
			xmlfile.RemoveChild(module, el)
		}
		var prev *etree.Element
		for _, ns := range cfg.NamespacesToSkip {
			prev = xmlfile.InsertChildAfter(module, prev, skipNSTag)
			prev.CreateAttr("name", ns)
		}
	}

	_, err = f.Save()
	return err
}

// ReadRun reads the run config at path. A missing file yields an empty config.
func (s *Store) ReadRun(path string) (*domain.RunConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := &domain.RunConfig{}
	root, err := readRoot(path)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return cfg, nil
	}

	v := vars(root)
	cfg.InPath = v[inPathVar]
	cfg.OutPath = v[outPathVar]
	if inc := root.SelectElement(includeTag); inc != nil {
		cfg.BaseConfigPath = inc.SelectAttrValue("path", "")
	}
	return cfg, nil
}

// WriteRun merges cfg into the run config at path.
func (s *Store) WriteRun(path string, cfg *domain.RunConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, root, err := openRoot(path)
	if err != nil {
		return err
	}

	setVar(root, inPathVar, cfg.InPath)
	setVar(root, outPathVar, cfg.OutPath)

	if cfg.BaseConfigPath != "" {
		inc := root.SelectElement(includeTag)
		if inc == nil {
			inc = xmlfile.AppendChild(root, includeTag)
		}
		inc.CreateAttr("path", cfg.BaseConfigPath)
	}

	_, err = f.Save()
	return err
}

// readRoot returns the Obfuscator element of the file at path, or nil when
// the file does not exist.
func readRoot(path string) (*etree.Element, error) {
	doc, err := xmlfile.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read obfuscator config"), "path", path)
	}
	root := doc.SelectElement(rootTag)
	if root == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedConfig, "missing Obfuscator root"), "path", path)
	}
	return root, nil
}

func openRoot(path string) (*xmlfile.File, *etree.Element, error) {
	f, err := xmlfile.LoadOrCreate(path, rootTag)
	if err != nil {
		return nil, nil, err
	}
	root := f.SelectElement(rootTag)
	if root == nil {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrMalformedConfig, "missing Obfuscator root"), "path", path)
	}
	return f, root, nil
}

func vars(root *etree.Element) map[string]string {
	out := make(map[string]string)
	for _, el := range root.SelectElements(varTag) {
		name := strings.TrimSpace(el.SelectAttrValue("name", ""))
		if name != "" {
			out[name] = el.SelectAttrValue("value", "")
		}
	}
	return out
}

// setVar updates the named Var, or adds it after the last Var.
func setVar(root *etree.Element, name, value string) {
	el := findByAttr(root, varTag, "name", name)
	if el == nil {
		el = xmlfile.InsertChildAfter(root, lastOf(root, varTag), varTag)
		el.CreateAttr("name", name)
	}
	el.CreateAttr("value", value)
}

func findByAttr(parent *etree.Element, tag, attr, value string) *etree.Element {
	for _, el := range parent.SelectElements(tag) {
		if el.SelectAttrValue(attr, "") == value {
			return el
		}
	}
	return nil
}

// lastOf returns the last child with the first tag that has any, or nil.
func lastOf(parent *etree.Element, tags ...string) *etree.Element {
	for _, tag := range tags {
		if els := parent.SelectElements(tag); len(els) > 0 {
			return els[len(els)-1]
		}
	}
	return nil
}
