// Package providers implements timesheet storage over flat files in the
// application's base directory:
//
//	${TIMEAFTERTIME_HOME}/timesheets/<name>.csv   the entries
//	${TIMEAFTERTIME_HOME}/timesheets/<name>.yaml  pay metadata
//	${TIMEAFTERTIME_HOME}/last                    name of the last-opened sheet
package providers

import (
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"timeaftertime/internal/model"
)

// FilesDataProvider provides timesheets from whole-file reads and writes
// under a base directory.
type FilesDataProvider struct {
	BaseDirPath string

	handlers map[string]*fileHandler
}

// NewFilesDataProvider creates the provider for the given base directory,
// creating the directory structure if it does not exist yet.
func NewFilesDataProvider(baseDirPath string) (*FilesDataProvider, error) {
	p := &FilesDataProvider{
		BaseDirPath: baseDirPath,
		handlers:    make(map[string]*fileHandler),
	}
	if err := os.MkdirAll(p.timesheetsDir(), 0755); err != nil {
		return nil, fmt.Errorf("could not create timesheet directory '%s' (%w)", p.timesheetsDir(), err)
	}
	return p, nil
}

func (p *FilesDataProvider) timesheetsDir() string {
	return path.Join(p.BaseDirPath, "timesheets")
}

func (p *FilesDataProvider) lastOpenedFilename() string {
	return path.Join(p.BaseDirPath, "last")
}

func (p *FilesDataProvider) handler(name string) *fileHandler {
	if h, ok := p.handlers[name]; ok {
		return h
	}
	h := &fileHandler{basePath: p.timesheetsDir(), name: name}
	p.handlers[name] = h
	return h
}

// List returns the names of all stored timesheets, sorted alphabetically.
func (p *FilesDataProvider) List() ([]string, error) {
	dirEntries, err := os.ReadDir(p.timesheetsDir())
	if err != nil {
		return nil, fmt.Errorf("could not read timesheet directory '%s' (%w)", p.timesheetsDir(), err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || !strings.HasSuffix(dirEntry.Name(), ".csv") {
			continue
		}
		names = append(names, strings.TrimSuffix(dirEntry.Name(), ".csv"))
	}
	sort.Strings(names)

	return names, nil
}

// Exists reports whether a timesheet of the given name is stored.
func (p *FilesDataProvider) Exists(name string) bool {
	_, err := os.Stat(p.handler(name).csvFilename())
	return err == nil
}

// Create stores a new timesheet, refusing to overwrite an existing one of
// the same name.
func (p *FilesDataProvider) Create(ts *model.Timesheet) error {
	if p.Exists(ts.Name) {
		return fmt.Errorf("a timesheet named '%s' already exists", ts.Name)
	}
	return p.Store(ts)
}

// Load reads the named timesheet from disk.
func (p *FilesDataProvider) Load(name string) (*model.Timesheet, error) {
	ts, err := p.handler(name).Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no timesheet named '%s'", name)
		}
		return nil, err
	}
	return ts, nil
}

// Store writes the timesheet back to disk as a whole.
func (p *FilesDataProvider) Store(ts *model.Timesheet) error {
	return p.handler(ts.Name).Write(ts)
}

// Delete removes the named timesheet's files. The last-opened marker is
// cleared if it pointed at the deleted sheet.
func (p *FilesDataProvider) Delete(name string) error {
	if !p.Exists(name) {
		return fmt.Errorf("no timesheet named '%s'", name)
	}
	if err := p.handler(name).Remove(); err != nil {
		return err
	}
	if p.LastOpened() == name {
		if err := os.Remove(p.lastOpenedFilename()); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msg("could not clear last-opened marker")
		}
	}
	return nil
}

// LastOpened returns the name of the last-opened timesheet, or the empty
// string if none is remembered.
func (p *FilesDataProvider) LastOpened() string {
	data, err := os.ReadFile(p.lastOpenedFilename())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetLastOpened remembers the given timesheet name as the last opened.
func (p *FilesDataProvider) SetLastOpened(name string) error {
	return os.WriteFile(p.lastOpenedFilename(), []byte(name+"\n"), 0644)
}

var whitespace = regexp.MustCompile(`\s+`)

// SanitizeSheetName collapses whitespace in a user-supplied timesheet name
// to underscores, yielding the name used on disk.
func SanitizeSheetName(name string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(name), "_")
}
