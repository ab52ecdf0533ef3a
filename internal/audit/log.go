package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/varalys/passcheck/internal/types"
)

type AnalysisRecord struct {
	Timestamp time.Time    `json:"timestamp"`
	ID        string       `json:"id"`
	Mode      string       `json:"mode"`
	Wordlists string       `json:"wordlists,omitempty"` // fingerprint of the merged wordlists
	Common    string       `json:"common,omitempty"`    // fingerprint of the common set
	Report    types.Report `json:"report"`
}

type AuditLog struct {
	logPath string
}

func NewAuditLog(path string) *AuditLog {
	return &AuditLog{logPath: path}
}

func (a *AuditLog) Path() string { return a.logPath }

// LoadHistory returns records newest first. A missing log is an empty history.
func (a *AuditLog) LoadHistory() ([]AnalysisRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []AnalysisRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record AnalysisRecord
		if err := decoder.Decode(&record); err != nil {
			break
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *AuditLog) LogAnalysis(record AnalysisRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if record.ID == "" {
		record.ID = fmt.Sprintf("analysis_%d", record.Timestamp.UnixNano())
	}
	// the record never holds the raw password
	record.Report.Password = types.RedactedPassword

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// Clear removes the log file.
func (a *AuditLog) Clear() error {
	if err := os.Remove(a.logPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove audit log: %w", err)
	}
	return nil
}

func NewAnalysisRecord(mode string, r types.Report, wordlists, common uint64) AnalysisRecord {
	return AnalysisRecord{
		Timestamp: time.Now(),
		Mode:      mode,
		Wordlists: fingerprint(wordlists),
		Common:    fingerprint(common),
		Report:    r,
	}
}

func fingerprint(v uint64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatUint(v, 16)
}
