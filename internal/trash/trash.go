// Package trash discovers items in XDG trash directories and selects which
// of them are offered for shredding.
package trash

import (
	"os"
	"time"

	"github.com/babarot/saidan/internal/shred"
)

// Item represents one trashed entry, identified by its trashinfo record
type Item struct {
	// Name is the name under which the content is stored in the trash
	// root's files directory
	Name string

	// OriginalPath is the absolute path the item was trashed from
	OriginalPath string

	// InfoPath is the absolute path of the item's trashinfo record
	InfoPath string

	// TrashPath is the absolute path of the stored content
	TrashPath string

	// DeletedAt is when the item was moved to trash
	DeletedAt time.Time

	// Size is the size of the stored content in bytes
	Size int64

	// IsDir indicates if the stored content is a directory
	IsDir bool
}

// Exists checks if the item's content still exists in the trash
func (i *Item) Exists() bool {
	_, err := os.Stat(i.TrashPath)
	return err == nil
}

// Handle returns the destroy target for this item
func (i *Item) Handle() shred.TrashedItem {
	return shred.TrashedItem{ID: i.InfoPath, Name: i.Name}
}

// GetName implements Filterable
func (i *Item) GetName() string { return i.Name }

// GetPath implements Filterable
func (i *Item) GetPath() string { return i.TrashPath }

// GetDeletedAt implements Filterable
func (i *Item) GetDeletedAt() time.Time { return i.DeletedAt }
