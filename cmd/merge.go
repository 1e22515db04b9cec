package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/listmerge/internal/models"
	"github.com/desertthunder/listmerge/internal/services"
	"github.com/desertthunder/listmerge/internal/shared"
	"github.com/urfave/cli/v3"
)

// mergeResult is the --json output of the merge command.
type mergeResult struct {
	SessionID string                `json:"session_id"`
	Left      int                   `json:"left"`
	Right     int                   `json:"right"`
	NewList   int                   `json:"new_list"`
	Committed bool                  `json:"committed"`
	Result    services.ListsPayload `json:"result"`
}

// returnMove is a parsed --return value.
type returnMove struct {
	id   models.ItemID
	side models.Side
}

// Merge runs a merge session from flags: select both lists, take items into the new list,
// send items back, then commit (or cancel with --dry-run).
func (r *Runner) Merge(ctx context.Context, cmd *cli.Command) error {
	left, right := int(cmd.Int("left")), int(cmd.Int("right"))
	if left == right {
		return fmt.Errorf("%w: --left and --right must differ", shared.ErrInvalidArgument)
	}

	returns, err := parseReturns(cmd.StringSlice("return"))
	if err != nil {
		return err
	}

	if _, err := r.load(ctx); err != nil {
		return err
	}

	for _, n := range []int{left, right} {
		if err := r.manager.Select(n, true); err != nil {
			return err
		}
	}

	newKey, err := r.manager.BeginMerge()
	if err != nil {
		return err
	}
	logger := r.logger.With("session", r.manager.SessionID())
	logger.Info("merge started", "left", left, "right", right, "new", newKey)

	for _, raw := range cmd.StringSlice("take") {
		if err := r.take(models.ItemID(strings.TrimSpace(raw)), left, right); err != nil {
			return errors.Join(err, r.manager.CancelMerge())
		}
	}

	for _, ret := range returns {
		if err := r.giveBack(ret, newKey); err != nil {
			return errors.Join(err, r.manager.CancelMerge())
		}
	}

	preview := r.manager.Lists()
	committed := !cmd.Bool("dry-run")
	if committed {
		err = r.manager.CommitMerge()
	} else {
		err = r.manager.CancelMerge()
	}
	if err != nil {
		return err
	}
	logger.Info("merge finished", "committed", committed, "new_items", len(preview[newKey]))

	if cmd.Bool("json") {
		return r.writeJSON(mergeResult{
			SessionID: r.manager.SessionID(),
			Left:      left,
			Right:     right,
			NewList:   newKey,
			Committed: committed,
			Result:    services.ListsPayload{Lists: preview.Records()},
		}, cmd.Bool("pretty"))
	}

	if err := r.printLists(preview, cmd); err != nil {
		return err
	}
	if committed {
		return r.writePlainln("✓ Merged List %d and List %d into List %d", left, right, newKey)
	}
	return r.writePlainln("Dry run: merge of List %d and List %d discarded", left, right)
}

// take moves the item with id from whichever selected list holds it into the new list.
func (r *Runner) take(id models.ItemID, left, right int) error {
	item, n, ok := r.manager.Lists().Find(id)
	if !ok || (n != left && n != right) {
		return fmt.Errorf("%w: item %s is not in list %d or %d", shared.ErrInvalidInput, id, left, right)
	}
	return r.manager.MoveToNewList(item, n)
}

func (r *Runner) giveBack(ret returnMove, newKey int) error {
	item, n, ok := r.manager.Lists().Find(ret.id)
	if !ok || n != newKey {
		return fmt.Errorf("%w: item %s is not in the new list", shared.ErrInvalidInput, ret.id)
	}
	return r.manager.MoveFromNewList(item, ret.side)
}

// parseReturns parses ID:left / ID:right values. The last colon separates the side.
func parseReturns(values []string) ([]returnMove, error) {
	moves := make([]returnMove, 0, len(values))
	for _, v := range values {
		i := strings.LastIndex(v, ":")
		if i <= 0 {
			return nil, fmt.Errorf("%w: --return %q, want ID:left or ID:right", shared.ErrInvalidFlag, v)
		}

		side, err := models.ParseSide(v[i+1:])
		if err != nil {
			return nil, fmt.Errorf("%w: --return %q: %v", shared.ErrInvalidFlag, v, err)
		}
		moves = append(moves, returnMove{id: models.ItemID(strings.TrimSpace(v[:i])), side: side})
	}
	return moves, nil
}
