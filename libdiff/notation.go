package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Notations diffs two notation texts character by character, cleaned up
// to semantic boundaries.
func Notations(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Equal reports whether diffs contains no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Stats returns the number of deleted and inserted bytes.
func Stats(diffs []diffpatch.Diff) (deleted, inserted int) {
	for i := range diffs {
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			deleted += len(diffs[i].Text)
		case diffpatch.DiffInsert:
			inserted += len(diffs[i].Text)
		}
	}
	return
}

// Render writes diffs inline, deletions as [-text-] and insertions as
// {+text+}. With colored set deletions are red and insertions green.
func Render(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).SprintFunc()
		ins = color.New(color.FgGreen).SprintFunc()
	}
	for i := range diffs {
		diff := &diffs[i]
		var s string
		switch diff.Type {
		case diffpatch.DiffEqual:
			s = diff.Text
		case diffpatch.DiffDelete:
			s = del(fmt.Sprintf(DeleteFormat, diff.Text))
		case diffpatch.DiffInsert:
			s = ins(fmt.Sprintf(InsertFormat, diff.Text))
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
