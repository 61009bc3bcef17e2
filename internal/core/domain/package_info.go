package domain

import "time"

// PackageInfo is the manifest record persisted after a successful packaging
// run. It is informational only; packaging never depends on its presence.
type PackageInfo struct {
	ProjectName string    `json:"project_name,omitzero"`
	ArchivePath string    `json:"archive_path,omitzero"`
	FileCount   int       `json:"file_count,omitzero"`
	ContentHash string    `json:"content_hash,omitzero"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}
