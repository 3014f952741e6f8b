package contracts

import (
	"github.com/tooldex/tooldex/catalog/models"
)

// IHistoryProvider supplies the recorded change history for a tracked file.
// Implementations return commits newest first and an empty slice when the
// file is untracked or the query fails; history lookup never errors.
type IHistoryProvider interface {
	FileHistory(path string) []models.Commit
}
