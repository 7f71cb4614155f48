// Package msbuild reads and edits MSBuild project files.
package msbuild

import (
	"strings"
	"sync"

	"github.com/beevik/etree"
	"go.trai.ch/obtools/internal/adapters/xmlfile"
	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/obtools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TargetSynchronizer = (*Synchronizer)(nil)

// Synchronizer implements ports.TargetSynchronizer on project files.
//
// Steps are identified by the sentinel first line of their Command
// attribute; see domain.StepKey.
type Synchronizer struct {
	refresher ports.ProjectRefresher
	mu        sync.Mutex
}

// NewSynchronizer creates a Synchronizer that notifies refresher after each
// write.
func NewSynchronizer(refresher ports.ProjectRefresher) *Synchronizer {
	return &Synchronizer{refresher: refresher}
}

// HasStep reports whether the target holds a step for key.
func (s *Synchronizer) HasStep(projectFile string, target domain.TargetSpec, key domain.StepKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := xmlfile.Load(projectFile)
	if err != nil {
		return false, err
	}
	project, err := projectRoot(doc)
	if err != nil {
		return false, err
	}

	t := findTarget(project, target.Name)
	if t == nil {
		return false, nil
	}
	return findStep(t, key) != nil, nil
}

// RemoveStep detaches the step for key. The target is kept even when it
// becomes empty.
func (s *Synchronizer) RemoveStep(projectFile string, target domain.TargetSpec, key domain.StepKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := xmlfile.Load(projectFile)
	if err != nil {
		return err
	}
	project, err := projectRoot(doc)
	if err != nil {
		return err
	}

	t := findTarget(project, target.Name)
	if t == nil {
		return nil
	}
	step := findStep(t, key)
	if step == nil {
		return nil
	}

	xmlfile.RemoveChild(t, step)
	return s.save(doc)
}

// PutStep adds the step, or replaces the command of the existing step with
// the same key.
func (s *Synchronizer) PutStep(projectFile string, target domain.TargetSpec, step domain.Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := xmlfile.Load(projectFile)
	if err != nil {
		return err
	}
	project, err := projectRoot(doc)
	if err != nil {
		return err
	}

	t := findTarget(project, target.Name)
	if t == nil {
		t = xmlfile.AppendChild(project, "Target")
		t.CreateAttr("Name", target.Name)
		if strings.TrimSpace(target.AfterTargets) != "" {
			t.CreateAttr("AfterTargets", target.AfterTargets)
		}
	}

	exec := findStep(t, step.Key)
	if exec == nil {
		exec = xmlfile.AppendChild(t, "Exec")
	}
	exec.CreateAttr("Command", step.Command)

	return s.save(doc)
}

func (s *Synchronizer) save(doc *xmlfile.File) error {
	written, err := doc.Save()
	if err != nil {
		return err
	}
	if written && s.refresher != nil {
		s.refresher.Refresh(doc.Path())
	}
	return nil
}

// projectRoot returns the Project root element.
func projectRoot(doc *xmlfile.File) (*etree.Element, error) {
	root := doc.SelectElement("Project")
	if root == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedProject, "missing Project root"), "path", doc.Path())
	}
	return root, nil
}

func findTarget(project *etree.Element, name string) *etree.Element {
	for _, t := range project.SelectElements("Target") {
		if t.SelectAttrValue("Name", "") == name {
			return t
		}
	}
	return nil
}

func findStep(target *etree.Element, key domain.StepKey) *etree.Element {
	prefix := key.Prefix()
	for _, exec := range target.SelectElements("Exec") {
		cmd := exec.SelectAttr("Command")
		if cmd == nil {
			continue
		}
		if strings.HasPrefix(cmd.Value, prefix) {
			return exec
		}
	}
	return nil
}
