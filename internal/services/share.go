package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/policykeeper/internal/common"
	"github.com/dmitrijs2005/policykeeper/internal/filex"
)

// ShareFile is an export handed to a share target.
type ShareFile struct {
	Name  string
	Data  []byte
	Title string
	Text  string
}

// Sharer delivers a file to another app or person.
type Sharer interface {
	Share(ctx context.Context, f ShareFile) error
}

// UnsupportedSharer is used when no share target is configured.
type UnsupportedSharer struct{}

func (UnsupportedSharer) Share(context.Context, ShareFile) error {
	return common.ErrShareUnsupported
}

// DirSharer drops shared files into an outbox folder watched by another
// tool, with the title and description in a companion text file.
type DirSharer struct {
	Dir string
}

func (d DirSharer) Share(_ context.Context, f ShareFile) error {
	if _, err := filex.WriteFile(d.Dir, f.Name, f.Data); err != nil {
		return fmt.Errorf("share %s: %w", f.Name, err)
	}
	note := f.Title + "\n" + f.Text + "\n"
	if _, err := filex.WriteFile(d.Dir, f.Name+".txt", []byte(note)); err != nil {
		return fmt.Errorf("share %s: %w", f.Name, err)
	}
	return nil
}
