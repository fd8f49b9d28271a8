package providers

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"timeaftertime/internal/model"
)

// csvHeader is the column header row of a timesheet's CSV file, matching the
// exported format.
var csvHeader = []string{"Date", "Duration", "Activity", "Rate"}

// sheetMeta is the pay metadata persisted alongside a timesheet's entries.
type sheetMeta struct {
	Name     string  `yaml:"name"`
	Currency string  `yaml:"currency"`
	Rate     float64 `yaml:"rate"`
	TimeBase string  `yaml:"timebase"`
}

// fileHandler does the actual whole-file reading and writing for one
// timesheet (a CSV file for the entries, a YAML sidecar for the metadata).
type fileHandler struct {
	mutex sync.Mutex

	basePath string
	name     string
}

func (h *fileHandler) csvFilename() string {
	return path.Join(h.basePath, h.name+".csv")
}

func (h *fileHandler) metaFilename() string {
	return path.Join(h.basePath, h.name+".yaml")
}

// Read loads the timesheet from disk. The error cases (missing or mangled
// files) leave no partially constructed sheet behind.
func (h *fileHandler) Read() (*model.Timesheet, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	metaData, err := os.ReadFile(h.metaFilename())
	if err != nil {
		return nil, fmt.Errorf("could not read timesheet metadata '%s' (%w)", h.metaFilename(), err)
	}
	var meta sheetMeta
	if err := yaml.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("could not parse timesheet metadata '%s' (%w)", h.metaFilename(), err)
	}
	if meta.Currency == "" {
		// sheets written before currency support default to GBP
		meta.Currency = "£"
	}
	timeBase, err := model.TimeBaseFromString(meta.TimeBase)
	if err != nil {
		return nil, fmt.Errorf("timesheet metadata '%s' broken (%w)", h.metaFilename(), err)
	}

	f, err := os.Open(h.csvFilename())
	if err != nil {
		return nil, fmt.Errorf("could not read timesheet '%s' from disk (%w)", h.csvFilename(), err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse timesheet '%s' (%w)", h.csvFilename(), err)
	}
	entries, err := EntriesFromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("timesheet '%s' broken (%w)", h.csvFilename(), err)
	}

	return &model.Timesheet{
		Name:     h.name,
		Currency: meta.Currency,
		Rate:     meta.Rate,
		TimeBase: timeBase,
		Entries:  entries,
	}, nil
}

// Write persists the timesheet as a whole.
func (h *fileHandler) Write(ts *model.Timesheet) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	meta := sheetMeta{
		Name:     ts.Name,
		Currency: ts.Currency,
		Rate:     ts.Rate,
		TimeBase: string(ts.TimeBase),
	}
	metaData, err := yaml.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("could not serialize timesheet metadata (%w)", err)
	}
	if err := os.WriteFile(h.metaFilename(), metaData, 0644); err != nil {
		return fmt.Errorf("could not write timesheet metadata '%s' (%w)", h.metaFilename(), err)
	}

	f, err := os.OpenFile(h.csvFilename(), os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("could not open file '%s' (%w)", h.csvFilename(), err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write to '%s' (%w)", h.csvFilename(), err)
	}
	for i := range ts.Entries {
		if err := writer.Write(recordFromEntry(&ts.Entries[i])); err != nil {
			return fmt.Errorf("could not write to '%s' (%w)", h.csvFilename(), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("could not write to '%s' (%w)", h.csvFilename(), err)
	}

	return nil
}

// Remove deletes the timesheet's files from disk.
func (h *fileHandler) Remove() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if err := os.Remove(h.csvFilename()); err != nil {
		return fmt.Errorf("could not remove '%s' (%w)", h.csvFilename(), err)
	}
	if err := os.Remove(h.metaFilename()); err != nil {
		return fmt.Errorf("could not remove '%s' (%w)", h.metaFilename(), err)
	}
	return nil
}

// EntriesFromRecords parses CSV records, header row included, into timesheet
// entries. This is the same row format `export` writes, so exported sheets
// import back losslessly.
func EntriesFromRecords(records [][]string) ([]model.Entry, error) {
	if len(records) < 1 || len(records[0]) < 1 || records[0][0] != csvHeader[0] {
		return nil, fmt.Errorf("missing the '%s,...' header row", csvHeader[0])
	}

	entries := make([]model.Entry, 0, len(records)-1)
	for _, record := range records[1:] {
		entry, err := entryFromRecord(record)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func entryFromRecord(record []string) (model.Entry, error) {
	if len(record) != len(csvHeader) {
		return model.Entry{}, fmt.Errorf("row has %d fields instead of %d", len(record), len(csvHeader))
	}

	date, err := model.FromString(record[0])
	if err != nil {
		return model.Entry{}, err
	}
	duration, err := strconv.ParseFloat(record[1], 64)
	if err != nil || duration < 0 {
		return model.Entry{}, fmt.Errorf("%w: '%s'", model.ErrInvalidDurationFormat, record[1])
	}
	rate, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return model.Entry{}, fmt.Errorf("rate '%s' is not a number", record[3])
	}

	return model.Entry{
		Date:     date,
		Duration: model.Duration(duration),
		Activity: record[2],
		Rate:     rate,
	}, nil
}

func recordFromEntry(e *model.Entry) []string {
	return []string{
		e.Date.String(),
		e.Duration.String(),
		e.Activity,
		strconv.FormatFloat(e.Rate, 'f', -1, 64),
	}
}
