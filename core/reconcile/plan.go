package reconcile

import (
	"context"
	"sort"
	"strings"

	"enum-registry/core/registry"
	"enum-registry/core/utils"
)

// DesiredRows returns the rows desc should have in language, one per distinct
// numeric value in declaration order. Values declared twice take the last
// declared member. Text is cut to the column limits so that a stored row
// compares equal to its desired counterpart.
func DesiredRows(desc *registry.Descriptor, language string) []Row {
	language = strings.ToLower(strings.TrimSpace(language))
	members := desc.Distinct()
	rows := make([]Row, 0, len(members))
	for _, m := range members {
		rows = append(rows, Row{
			EnumName:    desc.Name(),
			Value:       m.Value,
			Name:        utils.Truncate(m.Name, MaxNameLength),
			Description: utils.Truncate(registry.Resolve(m, language), MaxDescriptionLength),
			Language:    language,
		})
	}
	return rows
}

// Diff compares desired rows with existing rows of one type and returns the
// actions that make existing match desired.
//
// Existing rows that share an identity are collapsed to the one with the
// lowest ID; the rest are always deleted. Names of existing rows are never
// rewritten. Rows without a desired counterpart are deleted only when
// deleteOrphans is set.
func Diff(desired, existing []Row, deleteOrphans bool) []Action {
	sorted := make([]Row, len(existing))
	copy(sorted, existing)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	kept := make(map[Key]Row, len(sorted))
	var actions []Action
	for _, row := range sorted {
		if _, dup := kept[row.Key()]; dup {
			actions = append(actions, Action{Type: ActionDeleteDuplicate, Row: row})
			continue
		}
		kept[row.Key()] = row
	}

	wanted := make(map[Key]struct{}, len(desired))
	for _, want := range desired {
		wanted[want.Key()] = struct{}{}
		have, ok := kept[want.Key()]
		if !ok {
			actions = append(actions, Action{Type: ActionInsert, Row: want})
			continue
		}
		if have.Description != want.Description {
			updated := have
			updated.Description = want.Description
			actions = append(actions, Action{Type: ActionUpdate, Row: updated, Previous: have.Description})
		}
	}

	if deleteOrphans {
		for _, row := range sorted {
			if _, ok := wanted[row.Key()]; ok {
				continue
			}
			if kept[row.Key()].ID != row.ID {
				continue
			}
			actions = append(actions, Action{Type: ActionDeleteOrphan, Row: row})
		}
	}

	return actions
}

// Apply executes actions in tx: deletes first, then updates, then inserts.
func Apply(ctx context.Context, tx UnitTx, actions []Action) error {
	var inserts, updates, deletes []Row
	for _, a := range actions {
		switch a.Type {
		case ActionInsert:
			inserts = append(inserts, a.Row)
		case ActionUpdate:
			updates = append(updates, a.Row)
		case ActionDeleteOrphan, ActionDeleteDuplicate:
			deletes = append(deletes, a.Row)
		}
	}

	if len(deletes) > 0 {
		if err := tx.Delete(ctx, deletes); err != nil {
			return err
		}
	}
	if len(updates) > 0 {
		if err := tx.UpdateDescriptions(ctx, updates); err != nil {
			return err
		}
	}
	if len(inserts) > 0 {
		if err := tx.Insert(ctx, inserts); err != nil {
			return err
		}
	}
	return nil
}

func count(actions []Action) (inserted, updated, deleted, duplicates int) {
	for _, a := range actions {
		switch a.Type {
		case ActionInsert:
			inserted++
		case ActionUpdate:
			updated++
		case ActionDeleteOrphan:
			deleted++
		case ActionDeleteDuplicate:
			duplicates++
		}
	}
	return
}
