package storage

import (
	"encoding/json"
	"fmt"

	"github.com/sandeepkv93/routined/internal/model"
)

// BackupDocument is the interop format for export/import. Streak is included
// verbatim even though it is re-derivable from the logs.
type BackupDocument struct {
	Schedule model.Schedule    `json:"schedule"`
	Logs     model.LogMap      `json:"logs"`
	Settings model.Settings    `json:"settings"`
	Streak   model.StreakState `json:"streak"`
}

func ExportBackup(doc BackupDocument) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return append(out, '\n'), nil
}

func ImportBackup(raw []byte) (BackupDocument, error) {
	var doc BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return BackupDocument{}, fmt.Errorf("decode backup: %w", err)
	}
	if err := doc.Schedule.Validate(); err != nil {
		return BackupDocument{}, fmt.Errorf("backup schedule: %w", err)
	}
	if err := doc.Settings.Validate(); err != nil {
		return BackupDocument{}, fmt.Errorf("backup settings: %w", err)
	}
	if doc.Logs == nil {
		doc.Logs = make(model.LogMap)
	}
	if doc.Streak.FreezeLedger == nil {
		doc.Streak.FreezeLedger = []string{}
	}
	return doc, nil
}
