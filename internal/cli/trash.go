package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/babarot/saidan/internal/trash"
	"github.com/babarot/saidan/internal/ui"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

// ShredTrash destroys trashed items by their stored name, or the whole
// trash when no names are given.
func (c *CLI) ShredTrash(args []string) error {
	slog.Debug("cli.shredTrash started")
	defer slog.Debug("cli.shredTrash finished")

	manager, err := c.trashManager()
	if err != nil {
		return err
	}

	var items []*trash.Item
	if len(args) == 0 {
		items, err = manager.List()
	} else {
		items, err = manager.Lookup(args)
	}
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("Nothing in the trash to shred.")
		return nil
	}

	if c.config.Core.Shred.Confirm && !c.option.Rm.Force {
		prompt := fmt.Sprintf("Shred %d trashed item(s)? This cannot be undone.", len(items))
		if !ui.Confirm(prompt) {
			return errors.New("canceled")
		}
	}

	for _, item := range items {
		opID := uuid.NewString()
		slog.Debug("shredding trashed item",
			"op_id", opID,
			"name", item.Name,
			"info", item.InfoPath,
			"dir", item.IsDir,
		)

		if err := item.Handle().Shred(); err != nil {
			return fmt.Errorf("failed to shred %s: %w", item.Name, err)
		}

		if c.option.Rm.Verbose || c.config.Core.Shred.Verbose {
			fmt.Printf("shredded '%s' (deleted from %s)\n", item.Name, item.OriginalPath)
		}
	}

	return nil
}

// List prints the trashed items that would be offered for shredding.
// Nothing is destroyed.
func (c *CLI) List() error {
	manager, err := c.trashManager()
	if err != nil {
		return err
	}

	items, err := manager.List()
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("Trash is empty.")
		return nil
	}

	green := color.New(color.FgHiGreen).SprintFunc()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		green("Name"),
		green("Deleted At"),
		green("Size"),
		green("Type"),
		green("Original Path"),
	})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, item := range items {
		table.Append([]string{
			item.Name,
			humanize.Time(item.DeletedAt),
			humanize.Bytes(uint64(item.Size)),
			contentType(item),
			item.OriginalPath,
		})
	}

	table.Render()
	return nil
}

func contentType(item *trash.Item) string {
	if item.IsDir {
		return "directory"
	}
	mtype, err := mimetype.DetectFile(item.TrashPath)
	if err != nil {
		return "unknown"
	}
	return mtype.String()
}
