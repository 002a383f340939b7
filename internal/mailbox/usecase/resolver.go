package usecase

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
)

type groupLookup interface {
	GetGroupsByIDs(ctx context.Context, ids []int64) ([]entity.Group, error)
}

// Resolver expands recipient refs into a flat, deduplicated list of user ids.
type Resolver struct {
	groups groupLookup
}

func NewResolver(groups groupLookup) *Resolver {
	return &Resolver{groups: groups}
}

// Resolve returns user refs in input order followed by the members of the
// referenced groups (group input order, then member order). Each user id
// appears once, at its first position. Unknown groups add no members.
func (r *Resolver) Resolve(ctx context.Context, refs []entity.RecipientRef) ([]int64, error) {
	if len(refs) == 0 {
		return []int64{}, nil
	}

	userIDs := make([]int64, 0, len(refs))
	groupIDs := make([]int64, 0)
	for _, ref := range refs {
		switch ref.Kind {
		case entity.RecipientKindUser:
			userIDs = append(userIDs, ref.ID)
		case entity.RecipientKindGroup:
			groupIDs = append(groupIDs, ref.ID)
		}
	}
	groupIDs = lo.Uniq(groupIDs)

	resolved := userIDs
	if len(groupIDs) > 0 {
		groups, err := r.groups.GetGroupsByIDs(ctx, groupIDs)
		if err != nil {
			return nil, err
		}

		byID := lo.KeyBy(groups, func(g entity.Group) int64 { return g.ID })
		var missing []int64
		for _, id := range groupIDs {
			g, ok := byID[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			resolved = append(resolved, g.MemberIDs...)
		}

		if len(missing) > 0 {
			slog.WarnContext(ctx, "recipient groups not found", "group_ids", missing)
		}
	}

	return lo.Uniq(resolved), nil
}
