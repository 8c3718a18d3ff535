package user

import (
	"context"

	"libraryhub/models"
)

// ListPublicMembers returns the public member directory. Entries without any name are never returned.
func (s *DefaultUserService) ListPublicMembers(ctx context.Context, filter models.MemberFilter) ([]models.PublicMember, int64, error) {
	users, total, err := s.Repo.ListPublicMembers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	members := make([]models.PublicMember, 0, len(users))
	for _, u := range users {
		if !u.Profile.HasName() {
			total--
			continue
		}
		members = append(members, u.ToPublicMember())
	}
	if total < int64(len(members)) {
		total = int64(len(members))
	}
	return members, total, nil
}
